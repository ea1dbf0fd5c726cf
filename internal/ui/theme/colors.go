package theme

// Palette for both frontends, as hex strings. The window frontend converts
// them with RGBA; the terminal frontend hands them to lipgloss.
const (
	BG          = "#101418"
	Panel       = "#161C22"
	Border      = "#5A6B78"
	BorderFocus = "#D0D6DB"
	TextPrimary = "#E6E8EA"
	TextMuted   = "#8A949C"
	White       = "#FFFFFF"
	Red         = "#D22B2B"
	Green       = "#3FB950"
	Yellow      = "#D6B13A"
	Cyan        = "#39C5CF"
	Amber       = "#E0A030"
)

// Pair is a foreground/background colour pair, the unit the screens are
// styled in.
type Pair struct {
	FG string
	BG string
}

var (
	TitlePair     = Pair{FG: Red, BG: White}
	StatusPair    = Pair{FG: Amber, BG: BG}
	MovementPair  = Pair{FG: Green, BG: BG}
	DecksPair     = Pair{FG: Yellow, BG: BG}
	UnitsPair     = Pair{FG: Cyan, BG: BG}
	SelectionPair = Pair{FG: Red, BG: BG}
)

// HeaderPairs colour the instruction section headers in order.
var HeaderPairs = []Pair{MovementPair, DecksPair, UnitsPair, SelectionPair}
