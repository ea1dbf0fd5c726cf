package theme

// Cells sizes the character grid used by the window frontend.
type Cells struct {
	FontSize int32
	Width    int32
	Height   int32
}

var Grid = Cells{
	FontSize: 18,
	Width:    11,
	Height:   20,
}
