package armoury

import (
	"fmt"
	"testing"
)

func TestViewPlacesDecksOnGrid(t *testing.T) {
	s := newTestSession(t, func(o *Options) { o.DeckRows = 2 })
	for i := 0; i < 5; i++ {
		createDeck(t, s, fmt.Sprintf("D%d", i))
	}
	press(s, CodeKey(KeyRight), CodeKey(KeyRight), CodeKey(KeyRight))

	v := s.View()
	if v.DeckCount != 5 || v.MaxDecks != DefaultMaxDecks {
		t.Fatalf("unexpected counts %d/%d", v.DeckCount, v.MaxDecks)
	}
	want := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}}
	for i, e := range v.Decks {
		if e.Col != want[i][0] || e.Row != want[i][1] {
			t.Fatalf("deck %d at (%d,%d), want (%d,%d)", i, e.Col, e.Row, want[i][0], want[i][1])
		}
		if e.Selected != (i == 3) {
			t.Fatalf("deck %d selected=%v", i, e.Selected)
		}
	}
	if v.DeckUnits[0] != "[USA]D3 (0/25)" || v.DeckUnits[2] != "(no units)" {
		t.Fatalf("unexpected deck units pane %q", v.DeckUnits)
	}
}

func TestViewUnitInfoFollowsCursor(t *testing.T) {
	s := newTestSession(t, nil)
	press(s, CodeKey(KeyDown))
	v := s.View()
	if !v.Units[1].Selected || v.Units[0].Selected {
		t.Fatalf("expected second unit selected")
	}
	if len(v.UnitInfo) == 0 || v.UnitInfo[0] != "Name:      Tank" {
		t.Fatalf("unexpected unit info %q", v.UnitInfo)
	}
	if v.DeckUnits[0] != "(no deck selected)" {
		t.Fatalf("expected placeholder with no decks, got %q", v.DeckUnits)
	}
}

func TestViewModals(t *testing.T) {
	s := newTestSession(t, func(o *Options) { o.NameLength = 6 })
	press(s, RuneKey('c'))
	v := s.View()
	if v.Modal.Kind != ModalCreate || !v.Modal.NationPhase || v.Modal.Nation != "USA" {
		t.Fatalf("unexpected create modal %+v", v.Modal)
	}
	press(s, CodeKey(KeyEnter), RuneKey('A'), RuneKey('b'))
	v = s.View()
	if v.Modal.NationPhase || v.Modal.NameField != "Ab    " {
		t.Fatalf("unexpected name field %q", v.Modal.NameField)
	}
	press(s, CodeKey(KeyEnter), RuneKey('d'))
	v = s.View()
	if v.Modal.Kind != ModalDelete || v.Modal.Target != "[USA]Ab (0/25)" {
		t.Fatalf("unexpected delete modal %+v", v.Modal)
	}
	press(s, RuneKey('x'))
	if s.View().Modal.Kind != ModalNone {
		t.Fatalf("expected modal closed")
	}
}
