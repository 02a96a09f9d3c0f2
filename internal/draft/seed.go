package draft

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/johny-gastrobar/backoffice/internal/gastro"
)

var hundred = decimal.NewFromInt(100)

// FromOrder seeds a draft from a persisted order for the edit screen.
// Absent optional staff IDs become the empty "unassigned" sentinel and a
// zero discount becomes the empty field, matching what the form shows.
// Line snapshots are copied verbatim; they are trusted, not re-checked
// against current catalog prices.
func FromOrder(o gastro.Order) *OrderDraft {
	d := &OrderDraft{
		TableID:   strconv.Itoa(o.TableID),
		WaiterID:  optionalID(o.WaiterID),
		ManagerID: optionalID(o.ManagerID),
		Delivered: o.Delivered,
		Paid:      o.Paid,
	}
	if o.Discount != 0 {
		d.Discount = strconv.FormatFloat(o.Discount, 'f', -1, 64)
	}
	for _, l := range o.Lines {
		price := decimal.Zero
		if l.UnitPrice != nil {
			price = decimal.NewFromFloat(*l.UnitPrice)
		}
		d.Lines = append(d.Lines, Line{
			ItemID:    l.ItemID,
			Name:      l.Name,
			Category:  l.Category,
			UnitPrice: price,
			Quantity:  l.Quantity,
		})
	}
	return d
}

func optionalID(id *int) string {
	if id == nil {
		return ""
	}
	return strconv.Itoa(*id)
}

// ToSubmission validates the draft and produces the backend payload.
// Validation runs before any network call: the table must be a positive
// integer, the draft needs at least one line, staff fields must be numeric
// when set, and the discount must be a number between 0 and 100. Empty
// staff sentinels map to null and an empty discount to 0.
func (d *OrderDraft) ToSubmission() (gastro.Order, error) {
	tableID, err := strconv.Atoi(strings.TrimSpace(d.TableID))
	if err != nil || tableID <= 0 {
		return gastro.Order{}, NewValidationError("idMesa", "table required")
	}

	if len(d.Lines) == 0 {
		return gastro.Order{}, NewValidationError("itensDoPedido", "at least one item required")
	}

	waiterID, err := parseOptionalID(d.WaiterID)
	if err != nil {
		return gastro.Order{}, NewValidationError("idGarcom", "waiter must be a numeric id")
	}
	managerID, err := parseOptionalID(d.ManagerID)
	if err != nil {
		return gastro.Order{}, NewValidationError("idGerente", "manager must be a numeric id")
	}

	discount := decimal.Zero
	if d.Discount != "" {
		discount, err = decimal.NewFromString(strings.TrimSpace(d.Discount))
		if err != nil {
			return gastro.Order{}, NewValidationError("desconto", "discount must be a number")
		}
		if discount.IsNegative() || discount.GreaterThan(hundred) {
			return gastro.Order{}, NewValidationError("desconto", "discount must be between 0 and 100")
		}
	}

	lines := make([]gastro.OrderLine, len(d.Lines))
	for i, l := range d.Lines {
		price, _ := l.UnitPrice.Float64()
		lines[i] = gastro.OrderLine{
			ItemID:    l.ItemID,
			Quantity:  l.Quantity,
			Name:      l.Name,
			Category:  l.Category,
			UnitPrice: &price,
		}
	}

	discountValue, _ := discount.Float64()
	return gastro.Order{
		WaiterID:  waiterID,
		ManagerID: managerID,
		TableID:   tableID,
		Delivered: d.Delivered,
		Paid:      d.Paid,
		Discount:  discountValue,
		Lines:     lines,
	}, nil
}

func parseOptionalID(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
