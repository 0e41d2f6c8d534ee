package parameter

// Layout
const (
	// HUDHeight is the pixel height of the status panel below the field
	HUDHeight = 80

	// HealthBarOffset is the distance above the creep center where its health bar is drawn
	HealthBarOffset = 15

	// HealthBarHeight in pixels
	HealthBarHeight = 5

	// WindowScale multiplies the level size for the window frontend
	WindowScale = 1
)

// Terminal Frontend
const (
	// TerminalCellWidth is the number of pixels mapped to one terminal column
	TerminalCellWidth = 10

	// TerminalCellHeight is the number of pixels mapped to one terminal row
	TerminalCellHeight = 20

	// TerminalHUDRows reserved below the field
	TerminalHUDRows = 4
)

// Status Text
const (
	AudioStr  = "♫ "
	WonText   = "You Win!"
	LostText  = "Game Over"
	SendText  = "[space] send wave"
	BuildText = "building"
)

// HUD Text Grid
const (
	// HUDLineHeight is the pixel distance between status lines
	HUDLineHeight = 20

	// HUDCharWidth is the pixel advance assumed per character when laying out the menu
	HUDCharWidth = 10

	// HUDPadding is the left margin of the status panel
	HUDPadding = 10
)
