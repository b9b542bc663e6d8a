// Package layout decides how many gallery items are shown per batch. Items
// carry a column weight (1-4) and batches are cut by a column budget that
// differs between desktop and mobile viewports.
package layout

import "portfolio-gallery/pkg/models"

// Layout thresholds mirror the CSS breakpoints of the page
const (
	// MobileMaxWidth is the widest viewport still treated as mobile
	MobileMaxWidth = 980

	// DesktopInitialBudget is the column budget for the first batch
	DesktopInitialBudget = 20
	// DesktopMoreBudget is the column budget for each Load More batch
	DesktopMoreBudget = 10

	// MobileInitialCount is the item count for the first mobile batch
	MobileInitialCount = 4
	// MobileMoreCount is the item count for each mobile Load More batch
	MobileMoreCount = 2

	minColumns = 1
	maxColumns = 4
)

// Viewport classifies the page width for batch sizing
type Viewport int

const (
	Desktop Viewport = iota
	Mobile
)

// ClassifyViewport maps a viewport width to Desktop or Mobile
func ClassifyViewport(width int) Viewport {
	if width <= MobileMaxWidth {
		return Mobile
	}
	return Desktop
}

// Weight returns the clamped column weight of an item, falling back to the
// section default when the item carries no columns value.
func Weight(item models.Item, defaultColumns int) int {
	cols := item.Columns
	if cols == 0 {
		cols = defaultColumns
	}
	if cols < minColumns {
		cols = minColumns
	}
	if cols > maxColumns {
		cols = maxColumns
	}
	return cols
}

// FitCount walks items in order accumulating column weights and returns how
// many fit within the budget. The walk stops at the first item that would
// overflow; items after it are deferred even if they would fit on their own.
// A remainder no longer than the budget is always shown whole.
func FitCount(items []models.Item, budget int, defaultColumns int) int {
	if len(items) <= budget {
		return len(items)
	}

	used := 0
	for i, item := range items {
		w := Weight(item, defaultColumns)
		if used+w > budget {
			return i
		}
		used += w
	}
	return len(items)
}

// InitialCount returns the size of the first batch for a section
func InitialCount(items []models.Item, vp Viewport, defaultColumns int) int {
	if vp == Mobile {
		return min(MobileInitialCount, len(items))
	}
	return FitCount(items, DesktopInitialBudget, defaultColumns)
}

// MoreCount returns the size of the next batch given the undisplayed
// remainder of a section.
func MoreCount(remaining []models.Item, vp Viewport, defaultColumns int) int {
	if vp == Mobile {
		return min(MobileMoreCount, len(remaining))
	}
	return FitCount(remaining, DesktopMoreBudget, defaultColumns)
}
