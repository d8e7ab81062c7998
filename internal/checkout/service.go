package checkout

import (
	"fmt"

	"github.com/steeltrade/storefront-backend/internal/cart"
	pkgerrors "github.com/steeltrade/storefront-backend/pkg/errors"
)

// Acknowledgement is returned from a successful submit. There is no payment
// gateway behind it; success is unconditional by design.
type Acknowledgement struct {
	Message    string
	TotalCents int64
	ItemCount  int
}

type selectedClearer interface {
	ClearSelected()
}

// Flow drives the payment step over a selected subset of cart lines.
type Flow struct {
	cart  selectedClearer
	open  bool
	items []cart.Item
	total int64
	form  Form
}

// NewFlow wires the flow to the cart it settles against.
func NewFlow(cartStore selectedClearer) (*Flow, error) {
	if cartStore == nil {
		return nil, fmt.Errorf("cart store required")
	}
	return &Flow{cart: cartStore}, nil
}

// Open starts a checkout over the given lines, computing the total and
// resetting the form and payment-method selection.
func (f *Flow) Open(items []cart.Item) error {
	if len(items) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "checkout requires at least one item")
	}

	var total int64
	for _, item := range items {
		total += item.TotalCents()
	}

	f.open = true
	f.items = append([]cart.Item(nil), items...)
	f.total = total
	f.form = Form{}
	return nil
}

// IsOpen reports whether a checkout is in progress.
func (f *Flow) IsOpen() bool {
	return f.open
}

// Items returns the lines under checkout.
func (f *Flow) Items() []cart.Item {
	out := make([]cart.Item, len(f.items))
	copy(out, f.items)
	return out
}

// TotalCents is the order total, recomputed at Open.
func (f *Flow) TotalCents() (int64, error) {
	if !f.open {
		return 0, errNotOpen()
	}
	return f.total, nil
}

// UpdateForm stores the latest keystrokes and reports pay-button
// enablement. Invalid input is not an error: the button stays disabled.
func (f *Flow) UpdateForm(form Form) (bool, map[string]string, error) {
	if !f.open {
		return false, nil, errNotOpen()
	}
	f.form = form
	valid, details := ValidateForm(form)
	return valid, details, nil
}

// PayEnabled re-evaluates enablement against the current form.
func (f *Flow) PayEnabled() bool {
	if !f.open {
		return false
	}
	valid, _ := ValidateForm(f.form)
	return valid
}

// Submit finalizes the order: the stored form must validate, the selected
// lines are removed from the cart, and the user gets an acknowledgement.
func (f *Flow) Submit() (*Acknowledgement, error) {
	if !f.open {
		return nil, errNotOpen()
	}
	if valid, details := ValidateForm(f.form); !valid {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment form is incomplete").WithDetails(details)
	}

	ack := &Acknowledgement{
		Message:    "Заказ успешно оформлен!",
		TotalCents: f.total,
		ItemCount:  len(f.items),
	}

	f.cart.ClearSelected()
	f.open = false
	f.items = nil
	f.total = 0
	f.form = Form{}
	return ack, nil
}

// Dismiss abandons the checkout without touching the cart.
func (f *Flow) Dismiss() {
	f.open = false
	f.items = nil
	f.total = 0
	f.form = Form{}
}

func errNotOpen() *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeConflict, "checkout is not open")
}
