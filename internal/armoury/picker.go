package armoury

// Picker chooses one entry from a fixed list with left/right movement,
// confirmed by Enter.
type Picker struct {
	options []string
	cur     Cursor
}

func NewPicker(options []string) *Picker {
	return &Picker{options: append([]string(nil), options...)}
}

func (p *Picker) Index() int { return p.cur.Index() }

func (p *Picker) Selected() string {
	if len(p.options) == 0 {
		return ""
	}
	return p.options[p.cur.Index()]
}

// Handle reports true once the selection is confirmed.
func (p *Picker) Handle(k Key) bool {
	switch k.Code {
	case KeyLeft:
		p.cur.Prev()
	case KeyRight:
		p.cur.Next(len(p.options))
	case KeyEnter:
		return true
	}
	return false
}
