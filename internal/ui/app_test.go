package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/ascii-wars/internal/armoury"
)

func testModel(t *testing.T, start string) model {
	t.Helper()
	m, err := newModel(AppConfig{Version: "test", StartScreen: start})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m
}

func send(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		got, _ := m.Update(msg)
		m = got.(model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestMenuCursorClamps(t *testing.T) {
	m := testModel(t, "")
	m = send(t, m, keyUp)
	if m.idx != 0 {
		t.Fatalf("expected cursor to stay at 0, got %d", m.idx)
	}
	for i := 0; i < 10; i++ {
		m = send(t, m, keyDown)
	}
	if m.idx != len(menuLabels)-1 {
		t.Fatalf("expected cursor clamped at last item, got %d", m.idx)
	}
}

func TestMenuExitQuits(t *testing.T) {
	m := testModel(t, "")
	m.idx = int(itemExit)
	_, cmd := m.Update(keyEnter)
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestCtrlCQuitsFromArmoury(t *testing.T) {
	m := testModel(t, "armoury")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestMenuUnimplementedItemsSetStatus(t *testing.T) {
	m := testModel(t, "")
	m = send(t, m, keyEnter)
	if m.screen != screenMenu || !strings.Contains(m.status, "not implemented") {
		t.Fatalf("expected singleplayer status, got screen %v status %q", m.screen, m.status)
	}
}

func TestMultiplayerPlaceholder(t *testing.T) {
	m := testModel(t, "")
	m = send(t, m, keyDown, keyEnter)
	if m.screen != screenMultiplayer {
		t.Fatalf("expected multiplayer screen, got %v", m.screen)
	}
	if !strings.Contains(m.View(), "Not yet implemented") {
		t.Fatalf("expected placeholder text")
	}
	m = send(t, m, runes("x"))
	if m.screen != screenMultiplayer {
		t.Fatalf("expected other keys ignored")
	}
	m = send(t, m, keyEnter)
	if m.screen != screenMenu {
		t.Fatalf("expected enter to return to menu, got %v", m.screen)
	}
}

func TestArmouryCreateDeckThroughKeys(t *testing.T) {
	m := testModel(t, "")
	m = send(t, m, keyDown, keyDown, keyEnter)
	if m.screen != screenArmoury {
		t.Fatalf("expected armoury screen, got %v", m.screen)
	}
	m = send(t, m, runes("c"), keyEnter, runes("Alpha"), keyEnter)
	decks := m.session.Decks()
	if len(decks) != 1 || decks[0].Name != "Alpha" || decks[0].Nation != "USA" {
		t.Fatalf("unexpected decks %+v", decks)
	}
	if m.session.State() != armoury.StateBrowsing {
		t.Fatalf("expected browsing, got %s", m.session.State())
	}
}

func TestArmouryDecksSurviveLeavingScreen(t *testing.T) {
	m := testModel(t, "armoury")
	m = send(t, m, runes("c"), keyEnter, runes("Bravo"), keyEnter, runes("b"))
	if m.screen != screenMenu {
		t.Fatalf("expected b to return to menu, got %v", m.screen)
	}
	m.idx = int(itemArmoury)
	m = send(t, m, keyEnter)
	if m.screen != screenArmoury || m.session.DeckCount() != 1 {
		t.Fatalf("expected armoury with the earlier deck, got %v with %d decks", m.screen, m.session.DeckCount())
	}
}

func TestArmouryEscapeCancelsModal(t *testing.T) {
	m := testModel(t, "armoury")
	m = send(t, m, runes("c"), keyEsc)
	if m.session.State() != armoury.StateBrowsing || m.session.DeckCount() != 0 {
		t.Fatalf("expected modal cancelled")
	}
	if m.screen != screenArmoury {
		t.Fatalf("expected to stay on the armoury screen")
	}
}

func TestArmouryView(t *testing.T) {
	m := testModel(t, "armoury")
	m = send(t, m, tea.WindowSizeMsg{Width: 160, Height: 50}, runes("c"))
	if got := m.View(); !strings.Contains(got, "CREATE NEW DECK") {
		t.Fatalf("expected create modal in view")
	}
	m = send(t, m, keyEnter, runes("Alpha"), keyEnter)
	got := m.View()
	for _, want := range []string{"DECKS PANEL (1/20)", "[USA]Alpha (0/25)", "UNITS IN DECK", "Infantry", "Nation: USA", "Created deck"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in armoury view", want)
		}
	}
}

func TestNewModelRejectsUnknownScreen(t *testing.T) {
	if _, err := newModel(AppConfig{StartScreen: "armory"}); err == nil {
		t.Fatalf("expected error for misspelt start screen")
	}
}

func TestKeysFromMsg(t *testing.T) {
	if k := keysFromMsg(tea.KeyMsg{Type: tea.KeyBackspace}); len(k) != 1 || k[0].Code != armoury.KeyBackspace {
		t.Fatalf("expected backspace, got %+v", k)
	}
	if k := keysFromMsg(tea.KeyMsg{Type: tea.KeySpace}); len(k) != 1 || k[0].Rune != ' ' {
		t.Fatalf("expected space rune, got %+v", k)
	}
	if k := keysFromMsg(runes("ab")); len(k) != 2 || k[1].Rune != 'b' {
		t.Fatalf("expected one key per rune, got %+v", k)
	}
	if k := keysFromMsg(tea.KeyMsg{Type: tea.KeyTab}); len(k) != 1 || k[0].Code != armoury.KeyNone {
		t.Fatalf("expected tab as a key with no binding, got %+v", k)
	}
}

func TestArmouryUnboundKeysCancelDelete(t *testing.T) {
	for _, kt := range []tea.KeyType{tea.KeyTab, tea.KeyF1, tea.KeyHome, tea.KeyPgDown} {
		m := testModel(t, "armoury")
		m = send(t, m, runes("c"), keyEnter, runes("A"), keyEnter, runes("d"))
		if m.session.State() != armoury.StateConfirmingDelete {
			t.Fatalf("expected delete prompt, got %s", m.session.State())
		}
		m = send(t, m, tea.KeyMsg{Type: kt})
		if m.session.State() != armoury.StateBrowsing || m.session.DeckCount() != 1 {
			t.Fatalf("%v: expected prompt cancelled with deck kept, got %s with %d decks", kt, m.session.State(), m.session.DeckCount())
		}
	}
}

func TestArmouryUnboundKeysIgnoredWhileNaming(t *testing.T) {
	m := testModel(t, "armoury")
	m = send(t, m, runes("c"), keyEnter, runes("Ab"), tea.KeyMsg{Type: tea.KeyTab}, keyEnter)
	decks := m.session.Decks()
	if len(decks) != 1 || decks[0].Name != "Ab" {
		t.Fatalf("expected tab ignored by the name field, got %+v", decks)
	}
}
