package constants

// Names of the embedded SVG icons.
// The view toggle always shows the icon of the mode it switches to.
const (
	IconGridOn   = "grid_on"   // Shown in list mode, switches to grid
	IconViewList = "view_list" // Shown in grid mode, switches to list
	IconRetry    = "refresh"   // Shown next to the retry hint on error panels
)
