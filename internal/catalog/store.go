package catalog

import (
	"fmt"

	"github.com/steeltrade/storefront-backend/pkg/enums"
	pkgerrors "github.com/steeltrade/storefront-backend/pkg/errors"
	"github.com/steeltrade/storefront-backend/pkg/money"
)

// Store holds the immutable product list and the mutable per-product quick
// state driven by the inline catalog-card controls. It is owned by a session
// and is not safe for concurrent use on its own; the session serializes.
type Store struct {
	products  []Product
	byID      map[int]int
	quick     map[int]*QuickState
	formatter money.Formatter
}

// NewStore seeds quick state for every product: quantity 1, unit mass.
func NewStore(products []Product, formatter money.Formatter) (*Store, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("product list required")
	}
	if formatter == nil {
		return nil, fmt.Errorf("price formatter required")
	}

	byID := make(map[int]int, len(products))
	quick := make(map[int]*QuickState, len(products))
	for i, p := range products {
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		byID[p.ID] = i
		quick[p.ID] = &QuickState{Quantity: 1, Unit: enums.UnitMass}
	}

	return &Store{
		products:  products,
		byID:      byID,
		quick:     quick,
		formatter: formatter,
	}, nil
}

// Products returns the catalog in load order.
func (s *Store) Products() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// GetByID looks a product up by identifier.
func (s *Store) GetByID(id int) (*Product, error) {
	idx, ok := s.byID[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %d not found", id))
	}
	p := s.products[idx]
	return &p, nil
}

// QuickState returns the inline card state for the product.
func (s *Store) QuickState(id int) (QuickState, error) {
	state, ok := s.quick[id]
	if !ok {
		return QuickState{}, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %d not found", id))
	}
	return *state, nil
}

// SetQuantity stores the inline quantity, silently clamped to >= 1.
func (s *Store) SetQuantity(id, quantity int) error {
	state, ok := s.quick[id]
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %d not found", id))
	}
	state.Quantity = ClampQuantity(quantity)
	return nil
}

// SetUnit switches the inline unit toggle.
func (s *Store) SetUnit(id int, unit enums.Unit) error {
	state, ok := s.quick[id]
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %d not found", id))
	}
	if !unit.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid unit %q", unit))
	}
	state.Unit = unit
	return nil
}

// CardTotalCents is the price shown on the card: unit price times the inline
// quantity. Derived on demand, never cached.
func (s *Store) CardTotalCents(id int) (int64, error) {
	idx, ok := s.byID[id]
	if !ok {
		return 0, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %d not found", id))
	}
	state := s.quick[id]
	return s.products[idx].PriceCents * int64(state.Quantity), nil
}

// FormatPrice renders a kopeck amount with the store's formatter.
func (s *Store) FormatPrice(cents int64) string {
	return s.formatter.FormatCents(cents)
}

// AvailabilityLine renders the stock line for the product in the unit
// currently selected on its card.
func (s *Store) AvailabilityLine(id int) (string, error) {
	idx, ok := s.byID[id]
	if !ok {
		return "", pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %d not found", id))
	}
	state := s.quick[id]
	return fmt.Sprintf("В наличии: %s %s", s.products[idx].Availability.String(), state.Unit.AvailabilityLabel()), nil
}

// ClampQuantity applies the shared quantity floor. Transient invalid input
// (zero, negative) corrects to 1 rather than raising an error.
func ClampQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}
	return quantity
}
