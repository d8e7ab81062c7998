package configurator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/steeltrade/storefront-backend/internal/cart"
	"github.com/steeltrade/storefront-backend/internal/catalog"
	"github.com/steeltrade/storefront-backend/pkg/enums"
)

func productSeed(t *testing.T) (*catalog.Store, Seed) {
	t.Helper()
	store, err := catalog.NewStore(catalog.FallbackProducts(), fakeFormatter{})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	p, err := store.GetByID(1)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	qs, _ := store.QuickState(1)
	return store, SeedFromProduct(p, qs)
}

type fakeFormatter struct{}

func (fakeFormatter) FormatCents(int64) string { return "" }

func TestResolveFallsBackToSeed(t *testing.T) {
	_, seed := productSeed(t)

	dialog := New()
	dialog.OpenForProduct(1, seed)

	resolved := dialog.Resolve()
	if resolved != seed {
		t.Fatalf("untouched draft should resolve to seed, got %+v", resolved)
	}
}

func TestOverridesWinOverSeed(t *testing.T) {
	_, seed := productSeed(t)

	dialog := New()
	dialog.OpenForProduct(1, seed)

	if err := dialog.SetWarehouse(enums.WarehouseEKB); err != nil {
		t.Fatalf("set warehouse: %v", err)
	}
	if err := dialog.SetQuantity(4); err != nil {
		t.Fatalf("set quantity: %v", err)
	}

	resolved := dialog.Resolve()
	if resolved.Warehouse != enums.WarehouseEKB {
		t.Fatalf("override lost: %+v", resolved)
	}
	if resolved.Quantity != 4 {
		t.Fatalf("override lost: %+v", resolved)
	}
	// Fields without overrides keep seed values.
	if resolved.Diameter != seed.Diameter || resolved.Steel != seed.Steel {
		t.Fatalf("seed fields changed: %+v", resolved)
	}
}

func TestDraftResetsOnEveryOpen(t *testing.T) {
	_, seed := productSeed(t)

	dialog := New()
	dialog.OpenForProduct(1, seed)
	if err := dialog.SetSteel(enums.Steel12H18N); err != nil {
		t.Fatalf("set steel: %v", err)
	}

	// Re-opening for a cart line of a different product must not inherit the
	// unconfirmed steel override from the inline edit above.
	item := cart.Item{
		LineID:    uuid.New(),
		ProductID: 2,
		Warehouse: enums.WarehouseSPB,
		Diameter:  219,
		Thickness: 8,
		Steel:     enums.SteelSt3sp,
		Quantity:  2,
		Unit:      enums.UnitMass,
	}
	dialog.OpenForCartItem(2, item.LineID, SeedFromCartItem(item))

	if got, err := dialog.CartLine(); err != nil || got != item.LineID {
		t.Fatalf("cart line not tracked: %v %v", got, err)
	}

	resolved := dialog.Resolve()
	if resolved.Steel != enums.SteelSt3sp {
		t.Fatalf("override leaked across open: %+v", resolved)
	}
	if resolved.Quantity != 2 || resolved.Warehouse != enums.WarehouseSPB {
		t.Fatalf("cart seed not applied: %+v", resolved)
	}
}

func TestDismissDiscardsDraft(t *testing.T) {
	_, seed := productSeed(t)

	dialog := New()
	dialog.OpenForProduct(1, seed)
	dialog.SetQuantity(9)
	dialog.Dismiss()

	if dialog.IsOpen() {
		t.Fatal("dialog should be closed after dismiss")
	}
	if err := dialog.SetQuantity(3); err == nil {
		t.Fatal("expected error editing a closed dialog")
	}
}

func TestConfirmResolvesAndCloses(t *testing.T) {
	_, seed := productSeed(t)

	dialog := New()
	dialog.OpenForProduct(1, seed)
	dialog.SetUnit(enums.UnitLength)

	resolved, err := dialog.Confirm()
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if resolved.Unit != enums.UnitLength {
		t.Fatalf("unexpected resolve %+v", resolved)
	}
	if dialog.IsOpen() {
		t.Fatal("dialog should close on confirm")
	}
	if _, err := dialog.Confirm(); err == nil {
		t.Fatal("expected error confirming a closed dialog")
	}
}

func TestSetQuantityClamps(t *testing.T) {
	_, seed := productSeed(t)

	dialog := New()
	dialog.OpenForProduct(1, seed)
	dialog.SetQuantity(-2)

	if got := dialog.Resolve().Quantity; got != 1 {
		t.Fatalf("quantity not clamped: %d", got)
	}
}

func TestSetFieldDispatch(t *testing.T) {
	_, seed := productSeed(t)

	dialog := New()
	dialog.OpenForProduct(1, seed)

	if err := dialog.SetField("warehouse", "novosibirsk"); err != nil {
		t.Fatalf("set warehouse: %v", err)
	}
	if err := dialog.SetField("diameter", "219"); err != nil {
		t.Fatalf("set diameter: %v", err)
	}
	if err := dialog.SetField("quantity", "oops"); err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	if err := dialog.SetField("unit", "length"); err != nil {
		t.Fatalf("set unit: %v", err)
	}
	if err := dialog.SetField("steel", "steel9"); err == nil {
		t.Fatal("expected error for unknown steel code")
	}
	if err := dialog.SetField("color", "red"); err == nil {
		t.Fatal("expected error for unknown field")
	}

	resolved := dialog.Resolve()
	if resolved.Warehouse != enums.WarehouseNovosibirsk || resolved.Diameter != 219 {
		t.Fatalf("unexpected resolve %+v", resolved)
	}
	if resolved.Quantity != 1 {
		t.Fatalf("non-numeric quantity should correct to 1, got %d", resolved.Quantity)
	}
	if resolved.Unit != enums.UnitLength {
		t.Fatalf("unexpected unit %s", resolved.Unit)
	}
}

func TestSummaryProjection(t *testing.T) {
	_, seed := productSeed(t)

	dialog := New()
	dialog.OpenForProduct(1, seed)
	dialog.SetQuantity(3)

	summary, err := dialog.Summary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Warehouse != "Москва" {
		t.Fatalf("unexpected warehouse label %q", summary.Warehouse)
	}
	if summary.Diameter != "159 мм" {
		t.Fatalf("unexpected diameter label %q", summary.Diameter)
	}
	if summary.Steel != "20" {
		t.Fatalf("unexpected steel label %q", summary.Steel)
	}
	if summary.Quantity != "3 тонны" {
		t.Fatalf("unexpected quantity label %q", summary.Quantity)
	}
}

func TestTotalTracksResolvedQuantity(t *testing.T) {
	_, seed := productSeed(t)

	dialog := New()
	dialog.OpenForProduct(1, seed)
	dialog.SetQuantity(4)

	if got := dialog.TotalCents(150000); got != 600000 {
		t.Fatalf("unexpected total %d", got)
	}
}
