package render

// Terminal control sequences written around and between frames.
const (
	EnterAltScreen = "\x1b[?1049h"
	LeaveAltScreen = "\x1b[?1049l"
	HideCursor     = "\x1b[?25l"
	ShowCursor     = "\x1b[?25h"
	ClearScreen    = "\x1b[2J"
	CursorHome     = "\x1b[H"
)

const (
	// Setup switches to the alternate screen and hides the cursor.
	Setup = EnterAltScreen + HideCursor
	// Teardown undoes Setup.
	Teardown = ShowCursor + LeaveAltScreen
	// ClearHome wipes the display and parks the cursor top-left.
	ClearHome = ClearScreen + CursorHome
)

const (
	AliveGlyph = '*'
	DeadGlyph  = '.'
)
