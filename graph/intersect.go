package graph

// ListIntersection returns the elements common to a and b. Both inputs must
// be sorted ascending with no duplicates; unsorted input is a caller error,
// the result is then unspecified and no validation is attempted.
// Complexity: O(len(a) + len(b)).
func ListIntersection(a, b []int) []int {
	out := make([]int, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}
