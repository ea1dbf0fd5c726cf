package armoury

import (
	"errors"
	"testing"
)

func TestCatalogCreateReadBack(t *testing.T) {
	c := NewCatalog(3, DefaultDeckSizeLimit, DefaultNameLength)
	created, err := c.Create("Alpha", "USA")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, ok := c.At(c.Len() - 1)
	if !ok {
		t.Fatalf("expected deck at insertion index")
	}
	if got.Name != "Alpha" || got.Size() != 0 || len(got.Units) != 0 {
		t.Fatalf("unexpected deck read back: %+v", got)
	}
	if got.ID != created.ID {
		t.Fatalf("expected stable deck id %s, got %s", created.ID, got.ID)
	}
	if got.Limit != DefaultDeckSizeLimit {
		t.Fatalf("expected shared limit %d, got %d", DefaultDeckSizeLimit, got.Limit)
	}
}

func TestCatalogCreateWhenFullAppendsNothing(t *testing.T) {
	c := NewCatalog(2, 10, 15)
	for _, name := range []string{"A", "B"} {
		if _, err := c.Create(name, ""); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	_, err := c.Create("C", "")
	if !errors.Is(err, ErrCatalogFull) {
		t.Fatalf("expected ErrCatalogFull, got %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected count to stay 2, got %d", c.Len())
	}
}

func TestCatalogDeleteEmpty(t *testing.T) {
	c := NewCatalog(2, 10, 15)
	if _, err := c.Delete(0); !errors.Is(err, ErrCatalogEmpty) {
		t.Fatalf("expected ErrCatalogEmpty, got %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty catalog, got %d", c.Len())
	}
}

func TestCatalogDeleteKeepsOrder(t *testing.T) {
	c := NewCatalog(5, 10, 15)
	for _, name := range []string{"A", "B", "C"} {
		if _, err := c.Create(name, ""); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	deleted, err := c.Delete(1)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.Name != "B" {
		t.Fatalf("expected B deleted, got %q", deleted.Name)
	}
	decks := c.Decks()
	if len(decks) != 2 || decks[0].Name != "A" || decks[1].Name != "C" {
		t.Fatalf("unexpected order after delete: %+v", decks)
	}
	if _, err := c.Delete(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestCatalogRejectsBadNames(t *testing.T) {
	c := NewCatalog(5, 10, 5)
	if _, err := c.Create("   ", ""); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if _, err := c.Create("toolong", ""); !errors.Is(err, ErrNameTooLong) {
		t.Fatalf("expected ErrNameTooLong, got %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("expected nothing appended, got %d", c.Len())
	}
}

func TestCatalogCountNeverExceedsMax(t *testing.T) {
	const max = 4
	c := NewCatalog(max, 10, 15)
	ops := []bool{true, true, true, false, true, true, true, true, false, false, true}
	live := 0
	for i, create := range ops {
		if create {
			if c.Full() {
				continue
			}
			if _, err := c.Create("deck", ""); err != nil {
				t.Fatalf("op %d create: %v", i, err)
			}
			live++
		} else {
			if c.Empty() {
				continue
			}
			if _, err := c.Delete(0); err != nil {
				t.Fatalf("op %d delete: %v", i, err)
			}
			live--
		}
		if c.Len() != live || c.Len() > max {
			t.Fatalf("op %d: count %d, live %d, max %d", i, c.Len(), live, max)
		}
	}
}

func TestDeckUnitMutationNotImplemented(t *testing.T) {
	d := Deck{Name: "Alpha", Limit: 10}
	if err := d.AddUnit(1); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented from AddUnit, got %v", err)
	}
	if err := d.RemoveUnit(1); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented from RemoveUnit, got %v", err)
	}
	if d.Size() != 0 {
		t.Fatalf("expected deck untouched")
	}
}

func TestDeckLabel(t *testing.T) {
	d := Deck{Name: "Alpha", Nation: "FIN", Limit: 25}
	if got := d.Label(); got != "[FIN]Alpha (0/25)" {
		t.Fatalf("unexpected label %q", got)
	}
	d.Nation = ""
	if got := d.Label(); got != "Alpha (0/25)" {
		t.Fatalf("unexpected label without nation %q", got)
	}
}
