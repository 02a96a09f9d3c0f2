package draft

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johny-gastrobar/backoffice/internal/enum"
	"github.com/johny-gastrobar/backoffice/internal/gastro"
)

func catalogItem(id int, name, category string, price float64) gastro.MenuItem {
	return gastro.MenuItem{ID: &id, Name: name, Category: category, Price: price}
}

func TestAddItem_NewLineSnapshotsItem(t *testing.T) {
	d := New()

	err := d.AddItem(catalogItem(7, "Cola", enum.CategoryBeverage, 5.00))
	require.NoError(t, err)

	require.Len(t, d.Lines, 1)
	assert.Equal(t, 7, d.Lines[0].ItemID)
	assert.Equal(t, "Cola", d.Lines[0].Name)
	assert.Equal(t, enum.CategoryBeverage, d.Lines[0].Category)
	assert.True(t, d.Lines[0].UnitPrice.Equal(decimal.NewFromFloat(5.00)))
	assert.Equal(t, 1, d.Lines[0].Quantity)
}

func TestAddItem_RepeatedAddsIncrementQuantity(t *testing.T) {
	d := New()
	item := catalogItem(7, "Cola", enum.CategoryBeverage, 5.00)

	for i := 0; i < 5; i++ {
		require.NoError(t, d.AddItem(item))
	}

	require.Len(t, d.Lines, 1)
	assert.Equal(t, 5, d.Lines[0].Quantity)
}

func TestAddItem_SnapshotIgnoresLaterPriceChange(t *testing.T) {
	d := New()
	require.NoError(t, d.AddItem(catalogItem(7, "Cola", enum.CategoryBeverage, 5.00)))

	// Catalog price goes up; a second add of the same item only bumps the
	// quantity and keeps the original snapshot.
	require.NoError(t, d.AddItem(catalogItem(7, "Cola", enum.CategoryBeverage, 9.00)))

	require.Len(t, d.Lines, 1)
	assert.Equal(t, 2, d.Lines[0].Quantity)
	assert.True(t, d.Lines[0].UnitPrice.Equal(decimal.NewFromFloat(5.00)))
	assert.True(t, d.Subtotal().Equal(decimal.NewFromFloat(10.00)))
}

func TestAddItem_WithoutIDIsRefused(t *testing.T) {
	d := New()
	require.NoError(t, d.AddItem(catalogItem(1, "Beer", enum.CategoryBeverage, 8.00)))

	err := d.AddItem(gastro.MenuItem{Name: "X", Price: 1})

	var invalid *InvalidItemError
	require.ErrorAs(t, err, &invalid)
	require.Len(t, d.Lines, 1)
	assert.Equal(t, 1, d.Lines[0].ItemID)
}

func TestRemoveItem(t *testing.T) {
	d := New()
	require.NoError(t, d.AddItem(catalogItem(1, "Beer", enum.CategoryBeverage, 8.00)))
	require.NoError(t, d.AddItem(catalogItem(2, "Fries", enum.CategorySnack, 12.00)))

	d.RemoveItem(1)

	require.Len(t, d.Lines, 1)
	assert.Equal(t, 2, d.Lines[0].ItemID)
}

func TestRemoveItem_AbsentIDIsNoop(t *testing.T) {
	d := New()
	require.NoError(t, d.AddItem(catalogItem(1, "Beer", enum.CategoryBeverage, 8.00)))
	before := make([]Line, len(d.Lines))
	copy(before, d.Lines)

	d.RemoveItem(99)

	assert.Equal(t, before, d.Lines)
}

func TestSetQuantity(t *testing.T) {
	d := New()
	require.NoError(t, d.AddItem(catalogItem(1, "Beer", enum.CategoryBeverage, 8.00)))

	d.SetQuantity(1, 4)
	assert.Equal(t, 4, d.Lines[0].Quantity)

	// Below 1 is rejected, never an implicit removal.
	d.SetQuantity(1, 0)
	assert.Equal(t, 4, d.Lines[0].Quantity)
	d.SetQuantity(1, -1)
	assert.Equal(t, 4, d.Lines[0].Quantity)
	require.Len(t, d.Lines, 1)

	// Absent ID is a no-op.
	d.SetQuantity(99, 2)
	require.Len(t, d.Lines, 1)
	assert.Equal(t, 4, d.Lines[0].Quantity)
}

func TestTotal_AppliesPercentageDiscount(t *testing.T) {
	d := New()
	require.NoError(t, d.AddItem(catalogItem(3, "Steak", enum.CategoryMainDish, 10.00)))
	d.SetQuantity(3, 2)
	d.Discount = "10"

	assert.True(t, d.Subtotal().Equal(decimal.NewFromFloat(20.00)))
	assert.True(t, d.Total().Equal(decimal.NewFromFloat(18.00)), "got %s", d.Total())
}

func TestTotal_IsPureAndRepeatable(t *testing.T) {
	d := New()
	require.NoError(t, d.AddItem(catalogItem(7, "Cola", enum.CategoryBeverage, 5.00)))
	require.NoError(t, d.AddItem(catalogItem(7, "Cola", enum.CategoryBeverage, 5.00)))
	d.Discount = "25"
	before := make([]Line, len(d.Lines))
	copy(before, d.Lines)

	first := d.Total()
	second := d.Total()

	assert.True(t, first.Equal(second))
	assert.Equal(t, before, d.Lines)
	assert.Equal(t, "25", d.Discount)
}

func TestTotal_EmptyOrUnparseableDiscountCountsAsZero(t *testing.T) {
	d := New()
	require.NoError(t, d.AddItem(catalogItem(7, "Cola", enum.CategoryBeverage, 5.00)))

	d.Discount = ""
	assert.True(t, d.Total().Equal(decimal.NewFromFloat(5.00)))

	d.Discount = "abc"
	assert.True(t, d.Total().Equal(decimal.NewFromFloat(5.00)))
}

func TestTotal_ManyLinesNoDriftAtCentPrecision(t *testing.T) {
	d := New()
	for i := 1; i <= 100; i++ {
		require.NoError(t, d.AddItem(catalogItem(i, "Item", enum.CategoryOther, 0.10)))
	}

	// 100 lines at 0.10 each must be exactly 10, not 9.99999...
	assert.Equal(t, "10.00", d.Subtotal().StringFixed(2))
}

func TestOrderTotal_PersistedOrder(t *testing.T) {
	price := 10.00
	o := gastro.Order{
		TableID:  3,
		Discount: 10,
		Lines: []gastro.OrderLine{
			{ItemID: 1, Quantity: 2, UnitPrice: &price},
			{ItemID: 2, Quantity: 1}, // missing snapshot counts as zero
		},
	}

	assert.Equal(t, "18.00", OrderTotal(o).StringFixed(2))
}
