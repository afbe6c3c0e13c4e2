package format

import "sort"

// sortRendered orders a sibling group by its fully rendered text. The
// producer gives no iteration-order guarantee for fields, methods, enum
// constants or inner classes, so every group is rendered first and sorted
// on the resulting strings; two trees differing only in traversal order
// then render identically.
func sortRendered(items []string) {
	sort.Strings(items)
}
