package specsheet

// listPageCapacity is the number of repeatable-list slots on one page.
// OEM points and the merged t-shirt material list both use it.
const listPageCapacity = 3

// maxListPages caps repeatable lists at one overflow page.
const maxListPages = 2

// PagePlan describes how a repeatable list spreads across pages.
type PagePlan struct {
	Pages     int  // 1 or 2
	Truncated bool // items beyond Pages*capacity exist and will not render
}

// PlanPages decides the page count for a list of listLen items with the
// given per-page capacity. A single overflow page is added when the list
// exceeds one page; items beyond two pages are dropped, which the plan
// reports as truncation rather than an error.
func PlanPages(listLen, capacity int) PagePlan {
	if capacity < 1 {
		capacity = listPageCapacity
	}
	plan := PagePlan{Pages: 1}
	if listLen > capacity {
		plan.Pages = maxListPages
	}
	if listLen > maxListPages*capacity {
		plan.Truncated = true
	}
	return plan
}

// pageSlice returns the half-open item range [start, end) bound on the given
// zero-based page.
func pageSlice(listLen, capacity, page int) (start, end int) {
	start = page * capacity
	if start > listLen {
		start = listLen
	}
	end = start + capacity
	if end > listLen {
		end = listLen
	}
	return start, end
}
