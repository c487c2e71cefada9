package ui

import "github.com/chewxy/math32"

// ListClipper computes which rows of a long uniform-height list are
// visible, so only those are submitted.
//
//	clip := ui.NewListClipper(len(rows), rowH, visibleH, scroll)
//	for i := clip.Start; i < clip.End; i++ {
//	    ctx.Text(rows[i])
//	}
type ListClipper struct {
	Start      int // first visible row, inclusive
	End        int // last visible row, exclusive
	ItemHeight float32
	TotalItems int
}

// NewListClipper returns the visible range of totalItems rows of
// itemHeight scrolled down by scrollY within visibleHeight. A partially
// visible row at the bottom is included.
func NewListClipper(totalItems int, itemHeight, visibleHeight, scrollY float32) ListClipper {
	c := ListClipper{ItemHeight: itemHeight, TotalItems: totalItems}
	if totalItems <= 0 || itemHeight <= 0 {
		return c
	}
	c.Start = min(max(int(scrollY/itemHeight), 0), totalItems)
	visible := max(int(math32.Ceil(visibleHeight/itemHeight)), 1)
	c.End = min(c.Start+visible, totalItems)
	return c
}

// VisibleCount returns End - Start.
func (c ListClipper) VisibleCount() int { return c.End - c.Start }

// ContentHeight returns the height of all rows.
func (c ListClipper) ContentHeight() float32 {
	return float32(c.TotalItems) * c.ItemHeight
}

// MaxScroll returns the largest scroll offset that still fills visibleHeight.
func (c ListClipper) MaxScroll(visibleHeight float32) float32 {
	return math32.Max(c.ContentHeight()-visibleHeight, 0)
}

// ScrollToItem returns the scroll offset that brings row idx into view,
// or currentScroll if it is already visible.
func (c ListClipper) ScrollToItem(idx int, currentScroll, visibleHeight float32) float32 {
	if idx < 0 || idx >= c.TotalItems {
		return currentScroll
	}
	top := float32(idx) * c.ItemHeight
	bottom := top + c.ItemHeight
	switch {
	case top < currentScroll:
		return top
	case bottom > currentScroll+visibleHeight:
		return bottom - visibleHeight
	}
	return currentScroll
}
