package configurator

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/steeltrade/storefront-backend/internal/cart"
	"github.com/steeltrade/storefront-backend/internal/catalog"
	"github.com/steeltrade/storefront-backend/pkg/enums"
	pkgerrors "github.com/steeltrade/storefront-backend/pkg/errors"
)

// Entry names how the dialog was opened; it decides where a confirmed draft
// is merged back to.
type Entry string

const (
	EntryCatalog  Entry = "catalog"
	EntryCartItem Entry = "cart_item"
)

// Seed carries the dialog's initial values: the six configurable fields.
type Seed struct {
	Warehouse enums.Warehouse
	Diameter  float64
	Thickness float64
	Steel     enums.SteelGrade
	Quantity  int
	Unit      enums.Unit
}

// SeedFromProduct derives the seed for an inline/new configuration from the
// product defaults and its quick state.
func SeedFromProduct(p *catalog.Product, qs catalog.QuickState) Seed {
	return Seed{
		Warehouse: p.Warehouse,
		Diameter:  p.Diameter,
		Thickness: p.Thickness,
		Steel:     p.Steel,
		Quantity:  qs.Quantity,
		Unit:      qs.Unit,
	}
}

// SeedFromCartItem derives the seed when re-editing an existing cart line.
func SeedFromCartItem(item cart.Item) Seed {
	return Seed{
		Warehouse: item.Warehouse,
		Diameter:  item.Diameter,
		Thickness: item.Thickness,
		Steel:     item.Steel,
		Quantity:  item.Quantity,
		Unit:      item.Unit,
	}
}

// overrides records the fields the user changed; nil means "fall back to the
// seed at resolve time".
type overrides struct {
	warehouse *enums.Warehouse
	diameter  *float64
	thickness *float64
	steel     *enums.SteelGrade
	quantity  *int
	unit      *enums.Unit
}

// Dialog is the configuration dialog state machine. At most one exists per
// session; it is closed until opened for a product and the draft is reset on
// every open regardless of entry point, so unconfirmed edits can never leak
// between products.
type Dialog struct {
	open      bool
	productID int
	entry     Entry
	cartLine  uuid.UUID
	seed      Seed
	draft     overrides
}

// New returns a closed dialog.
func New() *Dialog {
	return &Dialog{}
}

// IsOpen reports whether a configuration session is live.
func (d *Dialog) IsOpen() bool {
	return d.open
}

// ProductID returns the product currently being configured.
func (d *Dialog) ProductID() (int, error) {
	if !d.open {
		return 0, errClosed()
	}
	return d.productID, nil
}

// Entry returns the entry point of the open dialog.
func (d *Dialog) Entry() (Entry, error) {
	if !d.open {
		return "", errClosed()
	}
	return d.entry, nil
}

// CartLine returns the id of the cart line being re-edited, valid only for
// cart-item entry. The id stays correct even when other lines are removed
// while the dialog is open; the caller re-resolves it to an index at confirm.
func (d *Dialog) CartLine() (uuid.UUID, error) {
	if !d.open {
		return uuid.Nil, errClosed()
	}
	if d.entry != EntryCartItem {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeConflict, "dialog was not opened from the cart")
	}
	return d.cartLine, nil
}

// OpenForProduct starts a new configuration seeded from catalog defaults.
func (d *Dialog) OpenForProduct(productID int, seed Seed) {
	*d = Dialog{
		open:      true,
		productID: productID,
		entry:     EntryCatalog,
		seed:      seed,
	}
}

// OpenForCartItem starts a re-edit of an existing cart line.
func (d *Dialog) OpenForCartItem(productID int, lineID uuid.UUID, seed Seed) {
	*d = Dialog{
		open:      true,
		productID: productID,
		entry:     EntryCartItem,
		cartLine:  lineID,
		seed:      seed,
	}
}

// Dismiss closes the dialog and discards the draft.
func (d *Dialog) Dismiss() {
	*d = Dialog{}
}

// Confirm resolves the draft and closes the dialog. The caller merges the
// result into the cart or the quick state depending on Entry.
func (d *Dialog) Confirm() (Seed, error) {
	if !d.open {
		return Seed{}, errClosed()
	}
	resolved := d.Resolve()
	*d = Dialog{}
	return resolved, nil
}

// SetWarehouse records a warehouse override.
func (d *Dialog) SetWarehouse(w enums.Warehouse) error {
	if !d.open {
		return errClosed()
	}
	d.draft.warehouse = &w
	return nil
}

// SetDiameter records a diameter override.
func (d *Dialog) SetDiameter(mm float64) error {
	if !d.open {
		return errClosed()
	}
	if mm < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "diameter cannot be negative")
	}
	d.draft.diameter = &mm
	return nil
}

// SetThickness records a wall-thickness override.
func (d *Dialog) SetThickness(mm float64) error {
	if !d.open {
		return errClosed()
	}
	if mm < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "thickness cannot be negative")
	}
	d.draft.thickness = &mm
	return nil
}

// SetSteel records a steel-grade override.
func (d *Dialog) SetSteel(s enums.SteelGrade) error {
	if !d.open {
		return errClosed()
	}
	d.draft.steel = &s
	return nil
}

// SetQuantity records a quantity override, silently clamped to >= 1.
func (d *Dialog) SetQuantity(quantity int) error {
	if !d.open {
		return errClosed()
	}
	clamped := catalog.ClampQuantity(quantity)
	d.draft.quantity = &clamped
	return nil
}

// SetUnit records a unit override.
func (d *Dialog) SetUnit(u enums.Unit) error {
	if !d.open {
		return errClosed()
	}
	if !u.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid unit %q", u))
	}
	d.draft.unit = &u
	return nil
}

// SetField dispatches a raw field update from the presentation layer.
func (d *Dialog) SetField(name, value string) error {
	if !d.open {
		return errClosed()
	}
	switch name {
	case "warehouse":
		w, err := enums.ParseWarehouse(value)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid warehouse")
		}
		return d.SetWarehouse(w)
	case "diameter":
		var mm float64
		if _, err := fmt.Sscanf(value, "%g", &mm); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid diameter")
		}
		return d.SetDiameter(mm)
	case "thickness":
		var mm float64
		if _, err := fmt.Sscanf(value, "%g", &mm); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid thickness")
		}
		return d.SetThickness(mm)
	case "steel":
		s, err := enums.ParseSteelGrade(value)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid steel grade")
		}
		return d.SetSteel(s)
	case "quantity":
		var qty int
		if _, err := fmt.Sscanf(value, "%d", &qty); err != nil {
			// Non-numeric quantity input corrects to 1, like the blur
			// handler on the card.
			qty = 1
		}
		return d.SetQuantity(qty)
	case "unit":
		u, err := enums.ParseUnit(value)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid unit")
		}
		return d.SetUnit(u)
	}
	return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown field %q", name))
}

// Resolve returns the effective configuration: overrides where present, seed
// values elsewhere.
func (d *Dialog) Resolve() Seed {
	resolved := d.seed
	if d.draft.warehouse != nil {
		resolved.Warehouse = *d.draft.warehouse
	}
	if d.draft.diameter != nil {
		resolved.Diameter = *d.draft.diameter
	}
	if d.draft.thickness != nil {
		resolved.Thickness = *d.draft.thickness
	}
	if d.draft.steel != nil {
		resolved.Steel = *d.draft.steel
	}
	if d.draft.quantity != nil {
		resolved.Quantity = *d.draft.quantity
	}
	if d.draft.unit != nil {
		resolved.Unit = *d.draft.unit
	}
	return resolved
}

// TotalCents is the price line shown in the dialog: unit price times the
// resolved quantity.
func (d *Dialog) TotalCents(priceCents int64) int64 {
	return priceCents * int64(d.Resolve().Quantity)
}

func errClosed() *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeConflict, "configuration dialog is not open")
}
