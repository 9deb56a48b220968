package domain

// CellsPerPage is the number of workplace-bearing cells in the layout, or the
// full fixed grid when the layout has none.
func CellsPerPage(g *Grid, fallbackRows, fallbackCols int) int {
	if g != nil {
		if n := g.WorkplaceCellCount(); n > 0 {
			return n
		}
	}
	if !ValidGridSize(fallbackRows) || !ValidGridSize(fallbackCols) {
		return DefaultGridRows * DefaultGridCols
	}
	return fallbackRows * fallbackCols
}

// PageCount is ceil(items / perPage), never less than 1.
func PageCount(items, perPage int) int {
	if items <= 0 || perPage <= 0 {
		return 1
	}
	return (items + perPage - 1) / perPage
}

// NextPage advances current modulo count. With one page or fewer it stays at 0.
func NextPage(current, count int) int {
	if count <= 1 {
		return 0
	}
	return (current + 1) % count
}

// ClampPage maps an arbitrary requested page into [0, count).
func ClampPage(page, count int) int {
	if count <= 1 || page < 0 {
		return 0
	}
	if page >= count {
		return page % count
	}
	return page
}

// PageBounds returns the half-open slice bounds of page within total items.
func PageBounds(page, perPage, total int) (start, end int) {
	if perPage <= 0 || total <= 0 {
		return 0, 0
	}
	start = page * perPage
	if start >= total {
		return total, total
	}
	end = start + perPage
	if end > total {
		end = total
	}
	return start, end
}
