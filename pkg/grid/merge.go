package grid

// MergeLine compacts and merges one line ordered from the leading edge to the
// trailing edge. A tile produced by a merge takes no part in another merge
// during the same pass, so [2,2,2] becomes [4,2,0]. Returns the new line
// (same length, zero padded on the trailing side) and the sum of the merged
// tiles.
func MergeLine(line []int) ([]int, int) {
	merged := make([]int, len(line))
	delta := mergeInto(merged, line)
	return merged, delta
}

// mergeInto writes the merged line into dst, which must be zeroed and as
// long as line
func mergeInto(dst, line []int) int {
	delta := 0
	n := 0
	last := -1 // value of the previous unmerged tile, -1 if there is none

	for _, v := range line {
		if v == 0 {
			continue
		}
		if v == last {
			dst[n-1] = v * 2
			delta += v * 2
			last = -1
		} else {
			dst[n] = v
			n++
			last = v
		}
	}
	return delta
}
