package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/steeltrade/storefront-backend/internal/cart"
	"github.com/steeltrade/storefront-backend/internal/catalog"
	"github.com/steeltrade/storefront-backend/internal/checkout"
	"github.com/steeltrade/storefront-backend/internal/configurator"
	"github.com/steeltrade/storefront-backend/internal/filter"
	"github.com/steeltrade/storefront-backend/pkg/enums"
	pkgerrors "github.com/steeltrade/storefront-backend/pkg/errors"
	"github.com/steeltrade/storefront-backend/pkg/money"
)

// Session owns all the mutable state of one storefront client: per-product
// quick state, the cart, at most one open configuration dialog and at most
// one checkout in progress. Every operation runs under the session mutex, so
// the stores themselves stay lock-free.
type Session struct {
	id       uuid.UUID
	mu       sync.Mutex
	lastSeen time.Time

	catalog  *catalog.Store
	cart     *cart.Store
	dialog   *configurator.Dialog
	checkout *checkout.Flow
}

// NewSession builds a session over the shared immutable product list. Quick
// state and the cart are private to the session.
func NewSession(products []catalog.Product, formatter money.Formatter) (*Session, error) {
	catalogStore, err := catalog.NewStore(products, formatter)
	if err != nil {
		return nil, fmt.Errorf("catalog store: %w", err)
	}
	cartStore, err := cart.NewStore(catalogStore)
	if err != nil {
		return nil, fmt.Errorf("cart store: %w", err)
	}
	flow, err := checkout.NewFlow(cartStore)
	if err != nil {
		return nil, fmt.Errorf("checkout flow: %w", err)
	}

	return &Session{
		id:       uuid.New(),
		lastSeen: time.Now(),
		catalog:  catalogStore,
		cart:     cartStore,
		dialog:   configurator.New(),
		checkout: flow,
	}, nil
}

// ID is the session identifier handed to the client.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// LastSeen reports the time of the latest operation, for idle eviction.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) lock() {
	s.mu.Lock()
	s.lastSeen = time.Now()
}

// --- catalog ---

// Card is the projection of one catalog card: product data plus the inline
// quick state and everything derived from it.
type Card struct {
	Product      catalog.Product
	Quantity     int
	Unit         string
	Price        string
	Total        string
	Availability string
}

func (s *Session) card(p catalog.Product) (Card, error) {
	state, err := s.catalog.QuickState(p.ID)
	if err != nil {
		return Card{}, err
	}
	total, err := s.catalog.CardTotalCents(p.ID)
	if err != nil {
		return Card{}, err
	}
	availability, err := s.catalog.AvailabilityLine(p.ID)
	if err != nil {
		return Card{}, err
	}
	return Card{
		Product:      p,
		Quantity:     state.Quantity,
		Unit:         string(state.Unit),
		Price:        s.catalog.FormatPrice(p.PriceCents),
		Total:        s.catalog.FormatPrice(total),
		Availability: availability,
	}, nil
}

// Catalog applies the active filters and search term and projects the result
// into cards. The empty flag drives the "nothing found" indicator.
func (s *Session) Catalog(criteria filter.Criteria, search string) (cards []Card, empty bool, err error) {
	s.lock()
	defer s.mu.Unlock()

	matched, _ := filter.FilterAll(s.catalog.Products(), criteria)
	matched = filter.Search(matched, search)

	cards = make([]Card, 0, len(matched))
	for _, p := range matched {
		c, err := s.card(p)
		if err != nil {
			return nil, false, err
		}
		cards = append(cards, c)
	}
	return cards, len(cards) == 0, nil
}

// ProductCard projects a single card, used after inline mutations.
func (s *Session) ProductCard(id int) (Card, error) {
	s.lock()
	defer s.mu.Unlock()

	p, err := s.catalog.GetByID(id)
	if err != nil {
		return Card{}, err
	}
	return s.card(*p)
}

// SetQuickQuantity stores the inline quantity for a card.
func (s *Session) SetQuickQuantity(id, quantity int) error {
	s.lock()
	defer s.mu.Unlock()
	return s.catalog.SetQuantity(id, quantity)
}

// SetQuickUnit switches the inline unit toggle for a card.
func (s *Session) SetQuickUnit(id int, unit string) error {
	s.lock()
	defer s.mu.Unlock()
	parsed, err := enums.ParseUnit(unit)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid unit")
	}
	return s.catalog.SetUnit(id, parsed)
}

// AddFromCard commits the card's quick state straight into the cart with the
// product's own warehouse and dimensions.
func (s *Session) AddFromCard(id int) error {
	s.lock()
	defer s.mu.Unlock()
	return s.addFromCardLocked(id)
}

func (s *Session) addFromCardLocked(id int) error {
	p, err := s.catalog.GetByID(id)
	if err != nil {
		return err
	}
	state, err := s.catalog.QuickState(id)
	if err != nil {
		return err
	}
	return s.cart.Add(cart.AddInput{
		ProductID: p.ID,
		Quantity:  state.Quantity,
		Unit:      state.Unit,
		Warehouse: p.Warehouse,
		Diameter:  p.Diameter,
		Thickness: p.Thickness,
		Steel:     p.Steel,
	})
}

// --- configuration dialog ---

// DialogView is the live projection of the open dialog.
type DialogView struct {
	ProductID int
	Entry     string
	Values    configurator.Seed
	Summary   configurator.Summary
	Total     string
}

// OpenDialogForProduct opens the dialog seeded from the product defaults and
// its quick state. Any previous draft is discarded.
func (s *Session) OpenDialogForProduct(id int) (DialogView, error) {
	s.lock()
	defer s.mu.Unlock()

	p, err := s.catalog.GetByID(id)
	if err != nil {
		return DialogView{}, err
	}
	state, err := s.catalog.QuickState(id)
	if err != nil {
		return DialogView{}, err
	}
	s.dialog.OpenForProduct(id, configurator.SeedFromProduct(p, state))
	return s.dialogViewLocked()
}

// OpenDialogForCartLine opens the dialog to re-edit a committed cart line.
func (s *Session) OpenDialogForCartLine(index int) (DialogView, error) {
	s.lock()
	defer s.mu.Unlock()

	item, err := s.cart.Get(index)
	if err != nil {
		return DialogView{}, err
	}
	s.dialog.OpenForCartItem(item.ProductID, item.LineID, configurator.SeedFromCartItem(item))
	return s.dialogViewLocked()
}

// SetDialogField applies one raw field update and returns the refreshed view.
func (s *Session) SetDialogField(name, value string) (DialogView, error) {
	s.lock()
	defer s.mu.Unlock()

	if err := s.dialog.SetField(name, value); err != nil {
		return DialogView{}, err
	}
	return s.dialogViewLocked()
}

// DialogState returns the current view of the open dialog.
func (s *Session) DialogState() (DialogView, error) {
	s.lock()
	defer s.mu.Unlock()
	return s.dialogViewLocked()
}

func (s *Session) dialogViewLocked() (DialogView, error) {
	productID, err := s.dialog.ProductID()
	if err != nil {
		return DialogView{}, err
	}
	entry, err := s.dialog.Entry()
	if err != nil {
		return DialogView{}, err
	}
	summary, err := s.dialog.Summary()
	if err != nil {
		return DialogView{}, err
	}
	p, err := s.catalog.GetByID(productID)
	if err != nil {
		return DialogView{}, err
	}
	return DialogView{
		ProductID: productID,
		Entry:     string(entry),
		Values:    s.dialog.Resolve(),
		Summary:   summary,
		Total:     s.catalog.FormatPrice(s.dialog.TotalCents(p.PriceCents)),
	}, nil
}

// ConfirmDialog resolves the draft and merges it back: into the cart as an
// addition when opened from the catalog, or in place over the originating
// line when opened from the cart.
func (s *Session) ConfirmDialog() error {
	s.lock()
	defer s.mu.Unlock()

	productID, err := s.dialog.ProductID()
	if err != nil {
		return err
	}
	entry, err := s.dialog.Entry()
	if err != nil {
		return err
	}

	var lineID uuid.UUID
	if entry == configurator.EntryCartItem {
		if lineID, err = s.dialog.CartLine(); err != nil {
			return err
		}
	}

	resolved, err := s.dialog.Confirm()
	if err != nil {
		return err
	}

	input := cart.AddInput{
		ProductID: productID,
		Quantity:  resolved.Quantity,
		Unit:      resolved.Unit,
		Warehouse: resolved.Warehouse,
		Diameter:  resolved.Diameter,
		Thickness: resolved.Thickness,
		Steel:     resolved.Steel,
	}
	if entry == configurator.EntryCartItem {
		// Other lines may have been removed while the dialog was open, so
		// the line id is re-resolved to its current position here.
		index, ok := s.cart.IndexOfLine(lineID)
		if !ok {
			return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("cart line %s no longer exists", lineID))
		}
		return s.cart.Reconfigure(index, input)
	}
	return s.cart.Add(input)
}

// DismissDialog discards the draft.
func (s *Session) DismissDialog() {
	s.lock()
	defer s.mu.Unlock()
	s.dialog.Dismiss()
}

// --- cart ---

// CartView is the whole cart panel state.
type CartView struct {
	Items           []CartLine
	Count           int
	AllSelected     bool
	CheckoutEnabled bool
	SelectedTotal   string
}

// CartLine is one rendered cart row.
type CartLine struct {
	Item  cart.Item
	Total string
}

// Cart projects the cart panel.
func (s *Session) Cart() CartView {
	s.lock()
	defer s.mu.Unlock()
	return s.cartViewLocked()
}

func (s *Session) cartViewLocked() CartView {
	items := s.cart.Items()
	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, CartLine{Item: item, Total: s.catalog.FormatPrice(item.TotalCents())})
	}

	var selectedTotal int64
	for _, item := range s.cart.SelectedItems() {
		selectedTotal += item.TotalCents()
	}

	return CartView{
		Items:           lines,
		Count:           s.cart.Count(),
		AllSelected:     s.cart.AllSelected(),
		CheckoutEnabled: s.cart.CheckoutEnabled(),
		SelectedTotal:   s.catalog.FormatPrice(selectedTotal),
	}
}

// RemoveCartLine deletes one line.
func (s *Session) RemoveCartLine(index int) (CartView, error) {
	s.lock()
	defer s.mu.Unlock()
	if err := s.cart.Remove(index); err != nil {
		return CartView{}, err
	}
	return s.cartViewLocked(), nil
}

// SetCartQuantity stores a typed quantity on one line.
func (s *Session) SetCartQuantity(index, quantity int) (CartView, error) {
	s.lock()
	defer s.mu.Unlock()
	if err := s.cart.SetQuantity(index, quantity); err != nil {
		return CartView{}, err
	}
	return s.cartViewLocked(), nil
}

// SetCartSelected flips one line's selection flag.
func (s *Session) SetCartSelected(index int, selected bool) (CartView, error) {
	s.lock()
	defer s.mu.Unlock()
	if err := s.cart.SetSelected(index, selected); err != nil {
		return CartView{}, err
	}
	return s.cartViewLocked(), nil
}

// SelectAllCart drives the select-all checkbox.
func (s *Session) SelectAllCart(selected bool) CartView {
	s.lock()
	defer s.mu.Unlock()
	s.cart.SelectAll(selected)
	return s.cartViewLocked()
}

// --- checkout ---

// CheckoutView is the payment step projection.
type CheckoutView struct {
	Items      []CartLine
	Total      string
	PayEnabled bool
}

// OpenCheckout starts a checkout over the currently selected lines.
func (s *Session) OpenCheckout() (CheckoutView, error) {
	s.lock()
	defer s.mu.Unlock()

	if err := s.checkout.Open(s.cart.SelectedItems()); err != nil {
		return CheckoutView{}, err
	}
	return s.checkoutViewLocked()
}

// BuyNow opens a checkout for a single line without touching the rest of the
// selection: the line is selected first so a successful submit removes it.
func (s *Session) BuyNow(index int) (CheckoutView, error) {
	s.lock()
	defer s.mu.Unlock()

	if err := s.cart.SetSelected(index, true); err != nil {
		return CheckoutView{}, err
	}
	item, err := s.cart.Get(index)
	if err != nil {
		return CheckoutView{}, err
	}
	if err := s.checkout.Open([]cart.Item{item}); err != nil {
		return CheckoutView{}, err
	}
	return s.checkoutViewLocked()
}

// CheckoutState returns the current payment-step view.
func (s *Session) CheckoutState() (CheckoutView, error) {
	s.lock()
	defer s.mu.Unlock()
	return s.checkoutViewLocked()
}

func (s *Session) checkoutViewLocked() (CheckoutView, error) {
	total, err := s.checkout.TotalCents()
	if err != nil {
		return CheckoutView{}, err
	}
	items := s.checkout.Items()
	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, CartLine{Item: item, Total: s.catalog.FormatPrice(item.TotalCents())})
	}
	return CheckoutView{
		Items:      lines,
		Total:      s.catalog.FormatPrice(total),
		PayEnabled: s.checkout.PayEnabled(),
	}, nil
}

// UpdateCheckoutForm stores the latest form state and reports enablement.
func (s *Session) UpdateCheckoutForm(form checkout.Form) (bool, map[string]string, error) {
	s.lock()
	defer s.mu.Unlock()
	return s.checkout.UpdateForm(form)
}

// SubmitCheckout finalizes the order and clears the submitted lines.
func (s *Session) SubmitCheckout() (*checkout.Acknowledgement, error) {
	s.lock()
	defer s.mu.Unlock()
	return s.checkout.Submit()
}

// FormatPrice renders a kopeck amount with the session formatter.
func (s *Session) FormatPrice(cents int64) string {
	return s.catalog.FormatPrice(cents)
}

// DismissCheckout abandons the payment step.
func (s *Session) DismissCheckout() {
	s.lock()
	defer s.mu.Unlock()
	s.checkout.Dismiss()
}
