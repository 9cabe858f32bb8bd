package domain

// Paginate slices list into the requested page. A non-positive size
// falls back to 10, a negative page to 0, and a page past the end is
// clamped to the last page holding any elements. On an empty list the
// clamp can produce a negative start index; that degrades to an empty
// page rather than a panic.
func Paginate(list []Price, page, size int) []Price {
	if size <= 0 {
		size = 10
	}
	if page < 0 {
		page = 0
	} else if page*size > len(list)-1 {
		page = (len(list) - 1) / size
	}
	start := page * size
	end := start + size
	if end > len(list)-1 {
		end = len(list)
	}
	if start < 0 || start > len(list) {
		return []Price{}
	}
	return list[start:end]
}
