package tui

const (
	sidebarWidth = 28
	panelWidth   = 34
	overviewRows = 9
	headerHeight = 1
	footerHeight = 2
)

// layout is the terminal cell geometry shared by View and mouse handling.
type layout struct {
	contentW int
	contentH int
	sidebarW int

	mapX, mapY int
	mapW, mapH int

	panelW   int
	ovX, ovY int
	ovW, ovH int
}

func computeLayout(width, height int, sidebar bool) layout {
	l := layout{
		contentW: max(10, width),
		contentH: max(4, height-headerHeight-footerHeight),
		mapY:     headerHeight,
	}
	if sidebar {
		l.sidebarW = sidebarWidth
		l.mapX = sidebarWidth + 1
	}
	gap := 0
	if l.contentW-l.mapX >= 60 {
		l.panelW = panelWidth
		gap = 1
	}
	l.mapW = max(10, l.contentW-l.mapX-l.panelW-gap)
	l.mapH = l.contentH
	if l.panelW > 0 {
		l.ovX = l.mapX + l.mapW + gap
		l.ovY = headerHeight + 1 // below the panel title
		l.ovW = l.panelW
		l.ovH = max(1, min(overviewRows, l.contentH-1))
	}
	return l
}

func (l layout) inMap(x, y int) bool {
	return x >= l.mapX && x < l.mapX+l.mapW && y >= l.mapY && y < l.mapY+l.mapH
}

func (l layout) inOverview(x, y int) bool {
	return l.panelW > 0 && x >= l.ovX && x < l.ovX+l.ovW && y >= l.ovY && y < l.ovY+l.ovH
}

// toMicro returns the micro-pixel at the center of cell (x, y) relative to an
// area's origin.
func toMicro(x, y, originX, originY int) (int, int) {
	return (x-originX)*2 + 1, (y-originY)*4 + 2
}
