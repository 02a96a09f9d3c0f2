// Package draft holds the in-memory order being composed or edited on the
// order screen. A draft is mutated only through the line operations here and
// never outlives its screen: it is discarded on cancel and after a
// successful submission.
package draft

import (
	"github.com/shopspring/decimal"

	"github.com/johny-gastrobar/backoffice/internal/gastro"
)

// Line is one drafted order line: a catalog reference plus the denormalized
// snapshot taken when the item was added. Catalog price changes after that
// moment do not touch existing lines.
type Line struct {
	ItemID    int
	Name      string
	Category  string
	UnitPrice decimal.Decimal
	Quantity  int
}

// OrderDraft mirrors the order form. The table, staff and discount fields
// hold the raw input strings; empty string is the "unassigned" sentinel.
// They are parsed and validated only at the submission boundary.
type OrderDraft struct {
	TableID   string
	WaiterID  string
	ManagerID string
	Discount  string
	Delivered bool
	Paid      bool
	Lines     []Line
}

// New returns an empty draft: no table, no lines, discount unset, both
// flags false.
func New() *OrderDraft {
	return &OrderDraft{}
}

// AddItem adds a catalog item to the draft. An item already on the draft has
// its quantity incremented instead of gaining a second line; a new item gets
// a fresh line with quantity 1 and a price/name/category snapshot. Items
// without an identifier are refused with *InvalidItemError and the draft is
// left untouched.
func (d *OrderDraft) AddItem(item gastro.MenuItem) error {
	if item.ID == nil {
		return &InvalidItemError{Name: item.Name}
	}
	for i := range d.Lines {
		if d.Lines[i].ItemID == *item.ID {
			d.Lines[i].Quantity++
			return nil
		}
	}
	d.Lines = append(d.Lines, Line{
		ItemID:    *item.ID,
		Name:      item.Name,
		Category:  item.Category,
		UnitPrice: decimal.NewFromFloat(item.Price),
		Quantity:  1,
	})
	return nil
}

// RemoveItem drops the line referencing itemID. Removing an absent item is
// a no-op, not an error.
func (d *OrderDraft) RemoveItem(itemID int) {
	for i := range d.Lines {
		if d.Lines[i].ItemID == itemID {
			d.Lines = append(d.Lines[:i], d.Lines[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the quantity on the line referencing itemID.
// Quantities below 1 are rejected and the line is left unchanged: dropping a
// line must go through RemoveItem, never through a decrement. An absent
// itemID is a no-op.
func (d *OrderDraft) SetQuantity(itemID, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range d.Lines {
		if d.Lines[i].ItemID == itemID {
			d.Lines[i].Quantity = quantity
			return
		}
	}
}

// Subtotal sums quantity times the unit price snapshot over all lines.
func (d *OrderDraft) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, l := range d.Lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return subtotal
}

// Total applies the percentage discount to the subtotal. For display totals
// an empty or unparseable discount counts as zero; range checking happens at
// the submission boundary.
func (d *OrderDraft) Total() decimal.Decimal {
	subtotal := d.Subtotal()
	pct := d.discountPercent()
	if pct.IsZero() {
		return subtotal
	}
	return subtotal.Sub(subtotal.Mul(pct).Div(decimal.NewFromInt(100)))
}

func (d *OrderDraft) discountPercent() decimal.Decimal {
	if d.Discount == "" {
		return decimal.Zero
	}
	pct, err := decimal.NewFromString(d.Discount)
	if err != nil {
		return decimal.Zero
	}
	return pct
}

// OrderTotal computes the same subtotal-minus-discount figure for a
// persisted order, for the total column on the order list screen. Lines
// missing a price snapshot count as zero.
func OrderTotal(o gastro.Order) decimal.Decimal {
	subtotal := decimal.Zero
	for _, l := range o.Lines {
		if l.UnitPrice == nil {
			continue
		}
		subtotal = subtotal.Add(decimal.NewFromFloat(*l.UnitPrice).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	discount := subtotal.Mul(decimal.NewFromFloat(o.Discount)).Div(decimal.NewFromInt(100))
	return subtotal.Sub(discount)
}
