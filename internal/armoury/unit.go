package armoury

import "fmt"

type SizeClass rune

const (
	SizeSmall  SizeClass = 'S'
	SizeMedium SizeClass = 'M'
	SizeLarge  SizeClass = 'L'
)

func (s SizeClass) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return "unknown"
	}
}

type UnitID int

// Unit is an immutable catalog entry. Decks refer to units by ID.
type Unit struct {
	ID          UnitID
	Symbol      rune
	Size        SizeClass
	SlotCost    int
	Health      int
	Damage      int
	Range       int
	Movement    int
	Accuracy    float64
	Name        string
	Description string
}

// Units is the ordered unit catalog shown in the units pane.
type Units []Unit

func (u Units) Lookup(id UnitID) (Unit, bool) {
	for _, unit := range u {
		if unit.ID == id {
			return unit, true
		}
	}
	return Unit{}, false
}

// InfoLines describes a unit for the unit information pane.
func (u Unit) InfoLines() []string {
	return []string{
		fmt.Sprintf("Name:      %s", u.Name),
		fmt.Sprintf("Symbol:    %c", u.Symbol),
		fmt.Sprintf("Size:      %c (%s)", rune(u.Size), u.Size),
		fmt.Sprintf("Slot cost: %d", u.SlotCost),
		fmt.Sprintf("Health:    %d", u.Health),
		fmt.Sprintf("Damage:    %d", u.Damage),
		fmt.Sprintf("Range:     %d", u.Range),
		fmt.Sprintf("Movement:  %d", u.Movement),
		fmt.Sprintf("Accuracy:  %.0f%%", u.Accuracy*100),
		"",
		u.Description,
	}
}

func DefaultUnits() Units {
	return Units{
		{ID: 1, Symbol: 'X', Size: SizeSmall, SlotCost: 1, Health: 10, Damage: 2, Range: 1, Movement: 1, Accuracy: 0.8, Name: "Infantry", Description: "Generic infantry unit"},
		{ID: 2, Symbol: 'T', Size: SizeLarge, SlotCost: 2, Health: 15, Damage: 4, Range: 3, Movement: 2, Accuracy: 0.7, Name: "Tank", Description: "Generic tank unit"},
		{ID: 3, Symbol: 'R', Size: SizeSmall, SlotCost: 1, Health: 6, Damage: 1, Range: 2, Movement: 3, Accuracy: 0.75, Name: "Recon", Description: "Light scouting team"},
		{ID: 4, Symbol: 'A', Size: SizeMedium, SlotCost: 2, Health: 8, Damage: 5, Range: 5, Movement: 1, Accuracy: 0.6, Name: "Artillery", Description: "Towed field gun, slow to relocate"},
		{ID: 5, Symbol: 'V', Size: SizeMedium, SlotCost: 2, Health: 12, Damage: 3, Range: 2, Movement: 3, Accuracy: 0.7, Name: "IFV", Description: "Infantry fighting vehicle"},
		{ID: 6, Symbol: 'S', Size: SizeMedium, SlotCost: 1, Health: 7, Damage: 0, Range: 0, Movement: 2, Accuracy: 0, Name: "Supply Truck", Description: "Resupplies adjacent units"},
	}
}
