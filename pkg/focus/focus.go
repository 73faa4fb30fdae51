// Package focus implements linear traversal of a focus chain.
package focus

// Move returns the id delta positions away from current in chain, wrapping
// at both ends. When current is not in the chain, forward moves start at
// the first entry and backward moves at the last. It returns false only if
// the chain is empty.
func Move[ID comparable](chain []ID, current ID, delta int) (ID, bool) {
	count := len(chain)
	if count == 0 {
		var zero ID
		return zero, false
	}
	index := indexOf(chain, current)
	if index < 0 {
		if delta < 0 {
			return chain[count-1], true
		}
		return chain[0], true
	}
	return chain[wrapIndex(index+delta, count)], true
}

// Next is Move with a delta of one.
func Next[ID comparable](chain []ID, current ID) (ID, bool) {
	return Move(chain, current, 1)
}

// Previous is Move with a delta of minus one.
func Previous[ID comparable](chain []ID, current ID) (ID, bool) {
	return Move(chain, current, -1)
}

// indexOf returns the index of id in chain, or -1.
func indexOf[ID comparable](chain []ID, id ID) int {
	for i, candidate := range chain {
		if candidate == id {
			return i
		}
	}
	return -1
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}
