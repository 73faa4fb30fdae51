package focus

import "testing"

func TestMove(t *testing.T) {
	chain := []int{10, 20, 30}
	tests := []struct {
		name    string
		chain   []int
		current int
		delta   int
		want    int
		wantOK  bool
	}{
		{name: "next", chain: chain, current: 10, delta: 1, want: 20, wantOK: true},
		{name: "next wraps", chain: chain, current: 30, delta: 1, want: 10, wantOK: true},
		{name: "previous", chain: chain, current: 20, delta: -1, want: 10, wantOK: true},
		{name: "previous wraps", chain: chain, current: 10, delta: -1, want: 30, wantOK: true},
		{name: "unfocused forward starts at first", chain: chain, current: 0, delta: 1, want: 10, wantOK: true},
		{name: "unfocused backward starts at last", chain: chain, current: 0, delta: -1, want: 30, wantOK: true},
		{name: "single entry", chain: []int{7}, current: 7, delta: 1, want: 7, wantOK: true},
		{name: "empty", chain: nil, current: 1, delta: 1, want: 0, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Move(tt.chain, tt.current, tt.delta)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Move(%v, %d, %d) = (%d, %v), want (%d, %v)", tt.chain, tt.current, tt.delta, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestWrapIndex(t *testing.T) {
	tests := []struct {
		index, count, want int
	}{
		{0, 3, 0},
		{3, 3, 0},
		{-1, 3, 2},
		{-4, 3, 2},
		{7, 3, 1},
	}
	for _, tt := range tests {
		if got := wrapIndex(tt.index, tt.count); got != tt.want {
			t.Errorf("wrapIndex(%d, %d) = %d, want %d", tt.index, tt.count, got, tt.want)
		}
	}
}
