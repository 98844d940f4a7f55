package render

// Named colours.
var (
	ColorBlack = RGB(0, 0, 0)
	ColorWhite = RGB(255, 255, 255)
	ColorRed   = RGB(255, 0, 0)
	ColorGreen = RGB(0, 255, 0)
	ColorBlue  = RGB(0, 0, 255)
)
