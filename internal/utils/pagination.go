// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

// PageRange returns the inclusive index range [from, to] covered by page
// (zero-based) when each page holds count items.
//
// The arithmetic is done in uint64, so any pair of uint32 inputs is exact.
// count must be at least 1; for count == 0 the range is empty and PageRange
// reports from = to = 0 with ok == false.
//
// Example:
//
//	from, to, _ := utils.PageRange(2, 10) // 20, 29
func PageRange(page, count uint32) (from, to uint64, ok bool) {
	if count == 0 {
		return 0, 0, false
	}
	c := uint64(count)
	from = uint64(page) * c
	to = (uint64(page)+1)*c - 1
	return from, to, true
}
