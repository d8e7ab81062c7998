package checkout

import (
	"testing"

	"github.com/steeltrade/storefront-backend/internal/cart"
	"github.com/steeltrade/storefront-backend/internal/catalog"
	"github.com/steeltrade/storefront-backend/pkg/enums"
	pkgerrors "github.com/steeltrade/storefront-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopFormatter struct{}

func (nopFormatter) FormatCents(int64) string { return "" }

func validForm() Form {
	return Form{
		CompanyName:   "ООО Стройтрубсервис",
		ContactName:   "Иванов Иван",
		Email:         "zakupki@sts.ru",
		INN:           "123456789012",
		Phone:         "+71234567890",
		PaymentMethod: "card",
	}
}

func newCartWithSelection(t *testing.T) *cart.Store {
	t.Helper()
	catalogStore, err := catalog.NewStore(catalog.FallbackProducts(), nopFormatter{})
	require.NoError(t, err)
	cartStore, err := cart.NewStore(catalogStore)
	require.NoError(t, err)

	for id := 1; id <= 3; id++ {
		require.NoError(t, cartStore.Add(cart.AddInput{
			ProductID: id,
			Quantity:  id,
			Unit:      enums.UnitMass,
			Warehouse: enums.WarehouseMoscow,
			Diameter:  100,
			Thickness: 5,
			Steel:     enums.Steel20,
		}))
	}
	require.NoError(t, cartStore.SetSelected(0, true))
	require.NoError(t, cartStore.SetSelected(2, true))
	return cartStore
}

func TestOpenComputesTotalAndResetsForm(t *testing.T) {
	cartStore := newCartWithSelection(t)
	flow, err := NewFlow(cartStore)
	require.NoError(t, err)

	require.NoError(t, flow.Open(cartStore.SelectedItems()))

	total, err := flow.TotalCents()
	require.NoError(t, err)
	// 1 × 1500 руб. + 3 × 850 руб.
	assert.Equal(t, int64(150000+3*85000), total)
	assert.False(t, flow.PayEnabled())
}

func TestOpenRejectsEmptySelection(t *testing.T) {
	cartStore := newCartWithSelection(t)
	flow, _ := NewFlow(cartStore)

	err := flow.Open(nil)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestValidationMatrix(t *testing.T) {
	breakField := map[string]func(*Form){
		"empty company":  func(f *Form) { f.CompanyName = "" },
		"empty contact":  func(f *Form) { f.ContactName = "" },
		"empty email":    func(f *Form) { f.Email = "" },
		"short inn":      func(f *Form) { f.INN = "12345678901" },
		"alpha inn":      func(f *Form) { f.INN = "12345678901a" },
		"no plus phone":  func(f *Form) { f.Phone = "71234567890" },
		"wrong country":  func(f *Form) { f.Phone = "+81234567890" },
		"short phone":    func(f *Form) { f.Phone = "+7123456789" },
		"long phone":     func(f *Form) { f.Phone = "+712345678901" },
		"no method":      func(f *Form) { f.PaymentMethod = "" },
		"unknown method": func(f *Form) { f.PaymentMethod = "barter" },
	}

	valid, details := ValidateForm(validForm())
	require.True(t, valid, "baseline form must validate: %v", details)

	// Contact fields only need to be filled; a malformed email still
	// enables pay.
	oddEmail := validForm()
	oddEmail.Email = "not-an-address"
	valid, details = ValidateForm(oddEmail)
	require.True(t, valid, "filled email must validate regardless of shape: %v", details)

	for name, mutate := range breakField {
		form := validForm()
		mutate(&form)
		valid, details := ValidateForm(form)
		assert.False(t, valid, "case %q should disable pay", name)
		assert.NotEmpty(t, details, "case %q should explain itself", name)
	}
}

func TestPayEnablementRecomputedOnEveryUpdate(t *testing.T) {
	cartStore := newCartWithSelection(t)
	flow, _ := NewFlow(cartStore)
	require.NoError(t, flow.Open(cartStore.SelectedItems()))

	partial := validForm()
	partial.Phone = "+7123"
	enabled, details, err := flow.UpdateForm(partial)
	require.NoError(t, err)
	assert.False(t, enabled)
	assert.Contains(t, details, "phone")

	enabled, details, err = flow.UpdateForm(validForm())
	require.NoError(t, err)
	assert.True(t, enabled)
	assert.Empty(t, details)
	assert.True(t, flow.PayEnabled())
}

func TestSubmitClearsSelectedAndPreservesRest(t *testing.T) {
	cartStore := newCartWithSelection(t)
	flow, _ := NewFlow(cartStore)
	require.NoError(t, flow.Open(cartStore.SelectedItems()))

	_, _, err := flow.UpdateForm(validForm())
	require.NoError(t, err)

	ack, err := flow.Submit()
	require.NoError(t, err)
	assert.Equal(t, "Заказ успешно оформлен!", ack.Message)
	assert.Equal(t, 2, ack.ItemCount)

	items := cartStore.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)

	assert.False(t, flow.IsOpen())
	if _, err := flow.Submit(); err == nil {
		t.Fatal("expected error submitting a closed checkout")
	}
}

func TestSubmitRejectsIncompleteForm(t *testing.T) {
	cartStore := newCartWithSelection(t)
	flow, _ := NewFlow(cartStore)
	require.NoError(t, flow.Open(cartStore.SelectedItems()))

	_, _, err := flow.UpdateForm(Form{})
	require.NoError(t, err)

	_, err = flow.Submit()
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	// Nothing cleared on failure.
	assert.Equal(t, 3, cartStore.Count())
}

func TestDismissLeavesCartUntouched(t *testing.T) {
	cartStore := newCartWithSelection(t)
	flow, _ := NewFlow(cartStore)
	require.NoError(t, flow.Open(cartStore.SelectedItems()))

	flow.Dismiss()
	assert.False(t, flow.IsOpen())
	assert.Equal(t, 3, cartStore.Count())
	assert.Len(t, cartStore.SelectedItems(), 2)
}
