// Package pager holds the page-navigation state for a viewed document.
// All operations are pure; the current page is carried in the request URL,
// so there is no session storage to invalidate.
package pager

// Clamp forces page into [1, total]. A non-positive total is treated as a
// one-page document.
func Clamp(page, total int) int {
	if total < 1 {
		total = 1
	}
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

// Advance moves one page forward, saturating at the last page.
func Advance(page, total int) int {
	return Clamp(page+1, total)
}

// Retreat moves one page back, saturating at the first page.
func Retreat(page, total int) int {
	return Clamp(page-1, total)
}
