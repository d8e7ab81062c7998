package cart

import (
	"testing"

	"github.com/steeltrade/storefront-backend/internal/catalog"
	"github.com/steeltrade/storefront-backend/pkg/enums"
	pkgerrors "github.com/steeltrade/storefront-backend/pkg/errors"
	"github.com/steeltrade/storefront-backend/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	catalogStore, err := catalog.NewStore(catalog.FallbackProducts(), money.NewRUB())
	require.NoError(t, err)
	store, err := NewStore(catalogStore)
	require.NoError(t, err)
	return store
}

func addInput(productID, quantity int) AddInput {
	return AddInput{
		ProductID: productID,
		Quantity:  quantity,
		Unit:      enums.UnitMass,
		Warehouse: enums.WarehouseMoscow,
		Diameter:  159,
		Thickness: 5,
		Steel:     enums.Steel20,
	}
}

func TestAddMergesIdenticalConfigurations(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Add(addInput(1, 2)))
	require.NoError(t, store.Add(addInput(1, 3)))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.False(t, items[0].Selected)
}

func TestAddAppendsWhenAnyKeyFieldDiffers(t *testing.T) {
	store := newTestStore(t)

	base := addInput(1, 1)
	require.NoError(t, store.Add(base))

	differentWarehouse := base
	differentWarehouse.Warehouse = enums.WarehouseSPB
	require.NoError(t, store.Add(differentWarehouse))

	differentUnit := base
	differentUnit.Unit = enums.UnitLength
	require.NoError(t, store.Add(differentUnit))

	differentSteel := base
	differentSteel.Steel = enums.SteelSt3sp
	require.NoError(t, store.Add(differentSteel))

	require.Equal(t, 4, store.Count())
}

func TestAddSnapshotsProductData(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Add(addInput(1, 2)))
	item, err := store.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "Труба бесшовная холоднодеформированная", item.Name)
	assert.Equal(t, "271.1121110-01", item.Code)
	assert.Equal(t, int64(150000), item.PriceCents)
}

func TestAddUnknownProductIsNotFound(t *testing.T) {
	store := newTestStore(t)

	err := store.Add(addInput(999, 1))
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	assert.Equal(t, 0, store.Count())
}

func TestLineTotalAlwaysDerivedFromInputs(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Add(addInput(1, 2)))
	item, _ := store.Get(0)
	assert.Equal(t, int64(300000), item.TotalCents())

	require.NoError(t, store.SetQuantity(0, 7))
	item, _ = store.Get(0)
	assert.Equal(t, int64(1050000), item.TotalCents())

	// Merge mutation keeps the total in step too.
	require.NoError(t, store.Add(addInput(1, 3)))
	item, _ = store.Get(0)
	assert.Equal(t, int64(1500000), item.TotalCents())
}

func TestSetQuantityClampsTransientInvalidValues(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Add(addInput(1, 2)))
	for _, qty := range []int{0, -5} {
		require.NoError(t, store.SetQuantity(0, qty))
		item, _ := store.Get(0)
		assert.Equal(t, 1, item.Quantity)
	}
}

func TestReconfigureKeepsIdentityAndPosition(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Add(addInput(1, 2)))
	require.NoError(t, store.Add(addInput(2, 1)))
	require.NoError(t, store.SetSelected(0, true))

	before, _ := store.Get(0)

	input := addInput(1, 4)
	input.Warehouse = enums.WarehouseSPB
	input.Steel = enums.SteelSt3sp
	require.NoError(t, store.Reconfigure(0, input))

	after, _ := store.Get(0)
	assert.Equal(t, before.LineID, after.LineID)
	assert.True(t, after.Selected)
	assert.Equal(t, 4, after.Quantity)
	assert.Equal(t, enums.WarehouseSPB, after.Warehouse)
	assert.Equal(t, enums.SteelSt3sp, after.Steel)
	// Denormalized snapshot fields are untouched by a reconfigure.
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, before.PriceCents, after.PriceCents)

	require.Error(t, store.Reconfigure(9, input))
}

func TestCorrectQuantityReclampsStoredValue(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Add(addInput(1, 2)))
	require.NoError(t, store.CorrectQuantity(0))
	item, _ := store.Get(0)
	assert.Equal(t, 2, item.Quantity, "valid quantities survive correction")

	require.Error(t, store.CorrectQuantity(5))
}

func TestSelectAllAndSelectedItems(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Add(addInput(1, 1)))
	require.NoError(t, store.Add(addInput(2, 1)))
	require.NoError(t, store.Add(addInput(3, 1)))

	store.SelectAll(true)
	assert.Len(t, store.SelectedItems(), 3)
	assert.True(t, store.AllSelected())
	assert.True(t, store.CheckoutEnabled())

	store.SelectAll(false)
	assert.Empty(t, store.SelectedItems())
	assert.False(t, store.AllSelected())
	assert.False(t, store.CheckoutEnabled())

	require.NoError(t, store.SetSelected(1, true))
	assert.False(t, store.AllSelected())
	assert.True(t, store.CheckoutEnabled())
}

func TestClearSelectedPreservesOrderOfRest(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Add(addInput(1, 1)))
	require.NoError(t, store.Add(addInput(2, 2)))
	require.NoError(t, store.Add(addInput(3, 3)))
	require.NoError(t, store.Add(addInput(4, 4)))

	require.NoError(t, store.SetSelected(0, true))
	require.NoError(t, store.SetSelected(2, true))
	store.ClearSelected()

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 4, items[1].ProductID)
	assert.Equal(t, 4, items[1].Quantity)
}

func TestRemoveByIndex(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Add(addInput(1, 1)))
	require.NoError(t, store.Add(addInput(2, 1)))
	require.NoError(t, store.Remove(0))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ProductID)

	err := store.Remove(5)
	require.NotNil(t, pkgerrors.As(err))
}

func TestIndexOfLine(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Add(addInput(1, 1)))
	require.NoError(t, store.Add(addInput(2, 1)))

	item, err := store.Get(1)
	require.NoError(t, err)

	idx, ok := store.IndexOfLine(item.LineID)
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	require.NoError(t, store.Remove(0))
	idx, ok = store.IndexOfLine(item.LineID)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}
