package cart

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/steeltrade/storefront-backend/internal/catalog"
	"github.com/steeltrade/storefront-backend/pkg/enums"
	pkgerrors "github.com/steeltrade/storefront-backend/pkg/errors"
)

// Item is a committed line: a point-in-time snapshot of a configured
// product. Name, code and price are denormalized at add time and never
// re-joined against the catalog.
type Item struct {
	LineID    uuid.UUID
	ProductID int
	Name      string
	Code      string

	PriceCents int64
	Quantity   int
	Unit       enums.Unit
	Selected   bool

	Warehouse enums.Warehouse
	Diameter  float64
	Thickness float64
	Steel     enums.SteelGrade
}

// Key is the six-field merge identity: two additions with equal keys are the
// same purchasable configuration and their quantities sum.
type Key struct {
	ProductID int
	Warehouse enums.Warehouse
	Diameter  float64
	Thickness float64
	Steel     enums.SteelGrade
	Unit      enums.Unit
}

// Key returns the merge identity of the line.
func (i Item) Key() Key {
	return Key{
		ProductID: i.ProductID,
		Warehouse: i.Warehouse,
		Diameter:  i.Diameter,
		Thickness: i.Thickness,
		Steel:     i.Steel,
		Unit:      i.Unit,
	}
}

// TotalCents is the line total, always derived from its inputs.
func (i Item) TotalCents() int64 {
	return i.PriceCents * int64(i.Quantity)
}

type productLookup interface {
	GetByID(id int) (*catalog.Product, error)
}

// Store is the ordered collection of committed line items for one session.
type Store struct {
	lookup productLookup
	items  []Item
}

// NewStore builds an empty cart backed by the catalog lookup.
func NewStore(lookup productLookup) (*Store, error) {
	if lookup == nil {
		return nil, fmt.Errorf("product lookup required")
	}
	return &Store{lookup: lookup}, nil
}

// AddInput carries one configured addition.
type AddInput struct {
	ProductID int
	Quantity  int
	Unit      enums.Unit
	Warehouse enums.Warehouse
	Diameter  float64
	Thickness float64
	Steel     enums.SteelGrade
}

// Add merges the addition into an existing line with the same key or appends
// a new unselected line. Unknown product ids are an explicit error.
func (s *Store) Add(input AddInput) error {
	product, err := s.lookup.GetByID(input.ProductID)
	if err != nil {
		return err
	}
	if !input.Unit.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid unit %q", input.Unit))
	}

	quantity := catalog.ClampQuantity(input.Quantity)

	key := Key{
		ProductID: input.ProductID,
		Warehouse: input.Warehouse,
		Diameter:  input.Diameter,
		Thickness: input.Thickness,
		Steel:     input.Steel,
		Unit:      input.Unit,
	}
	for i := range s.items {
		if s.items[i].Key() == key {
			s.items[i].Quantity += quantity
			return nil
		}
	}

	s.items = append(s.items, Item{
		LineID:     uuid.New(),
		ProductID:  product.ID,
		Name:       product.Name,
		Code:       product.Code,
		PriceCents: product.PriceCents,
		Quantity:   quantity,
		Unit:       input.Unit,
		Selected:   false,
		Warehouse:  input.Warehouse,
		Diameter:   input.Diameter,
		Thickness:  input.Thickness,
		Steel:      input.Steel,
	})
	return nil
}

// Items returns the lines in insertion order.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the line at the index.
func (s *Store) Get(index int) (Item, error) {
	if err := s.checkIndex(index); err != nil {
		return Item{}, err
	}
	return s.items[index], nil
}

// IndexOfLine resolves a stable line id to its current position.
func (s *Store) IndexOfLine(lineID uuid.UUID) (int, bool) {
	for i := range s.items {
		if s.items[i].LineID == lineID {
			return i, true
		}
	}
	return 0, false
}

// Remove deletes the line at the index, preserving the order of the rest.
func (s *Store) Remove(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	return nil
}

// Reconfigure overwrites the configurable fields of an existing line in
// place, keeping its id, selection flag and position. Used when a
// configuration dialog opened from the cart is confirmed.
func (s *Store) Reconfigure(index int, input AddInput) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	if !input.Unit.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid unit %q", input.Unit))
	}
	line := &s.items[index]
	line.Quantity = catalog.ClampQuantity(input.Quantity)
	line.Unit = input.Unit
	line.Warehouse = input.Warehouse
	line.Diameter = input.Diameter
	line.Thickness = input.Thickness
	line.Steel = input.Steel
	return nil
}

// SetQuantity stores the typed quantity, silently clamped to >= 1. Blur-time
// correction re-applies the same clamp, so a transient invalid value can
// never persist.
func (s *Store) SetQuantity(index, quantity int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.items[index].Quantity = catalog.ClampQuantity(quantity)
	return nil
}

// CorrectQuantity re-applies the clamp to the stored value, mirroring the
// blur handler on the quantity input.
func (s *Store) CorrectQuantity(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.items[index].Quantity = catalog.ClampQuantity(s.items[index].Quantity)
	return nil
}

// SetSelected flips the selection flag on one line.
func (s *Store) SetSelected(index int, selected bool) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.items[index].Selected = selected
	return nil
}

// SelectAll sets every line's selection flag identically.
func (s *Store) SelectAll(selected bool) {
	for i := range s.items {
		s.items[i].Selected = selected
	}
}

// SelectedItems returns the selected lines in order.
func (s *Store) SelectedItems() []Item {
	out := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		if item.Selected {
			out = append(out, item)
		}
	}
	return out
}

// ClearSelected removes every selected line, preserving relative order of
// the remainder.
func (s *Store) ClearSelected() {
	kept := s.items[:0]
	for _, item := range s.items {
		if !item.Selected {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

// Count is the number of lines, shown on the cart badge.
func (s *Store) Count() int {
	return len(s.items)
}

// AllSelected mirrors the select-all checkbox: true when every line is
// selected. An empty cart counts as fully selected, matching the derived
// checkbox state.
func (s *Store) AllSelected() bool {
	for _, item := range s.items {
		if !item.Selected {
			return false
		}
	}
	return true
}

// CheckoutEnabled reports whether at least one line is selected. Recomputed
// after every mutation, never stored.
func (s *Store) CheckoutEnabled() bool {
	for _, item := range s.items {
		if item.Selected {
			return true
		}
	}
	return false
}

func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.items) {
		return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("cart index %d out of range", index))
	}
	return nil
}
