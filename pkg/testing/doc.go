// Package testing provides a widget testing harness for arbor.
//
// # Quick Start
//
// Create a tester around a widget tree, drive input, and assert on data
// and on what was painted:
//
//	func TestCounter(t *testing.T) {
//	    tester := arbortest.NewWidgetTesterWithT(t, root, Model{})
//
//	    if err := tester.Tap("+1"); err != nil {
//	        t.Fatal(err)
//	    }
//	    tester.Pump()
//
//	    if tester.Data().Count != 1 {
//	        t.Error("tap did not increment")
//	    }
//	}
//
// # Snapshot Testing
//
// Compare the display ops of the last frame against a golden file:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/counter.snapshot.json")
//
// Update snapshots with:
//
//	ARBOR_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Timers
//
// The tester's window runs on a fake clock:
//
//	tester.Advance(500 * time.Millisecond)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import arbortest "github.com/go-drift/arbor/pkg/testing"
package testing
