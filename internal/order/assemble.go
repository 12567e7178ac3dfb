package order

import (
	"strconv"

	"github.com/limetreebower/invoicegen/internal/extract"
)

// Assemble merges extracted and derived fields into the final record. It is
// the single point that re-validates every required field, substituting the
// documented defaults for anything still absent. The returned record is
// complete and never mutated afterwards.
func Assemble(fields extract.Fields, derived Derived, defaults Defaults) OrderRecord {
	return OrderRecord{
		OrderNumber:    fields.Get(extract.FieldOrderNumber),
		Date:           stringOr(fields.Get(extract.FieldDate), defaults.Date),
		CustomerName:   fields.Get(extract.FieldCustomerName),
		Email:          stringOr(fields.Get(extract.FieldEmail), defaults.Email),
		Description:    stringOr(fields.Get(extract.FieldDescription), defaults.Description),
		Quantity:       positiveIntOr(fields.Get(extract.FieldQuantity), 1),
		UnitPrice:      amountOrZero(fields.Get(extract.FieldUnitPrice)).StringFixed(2),
		ShippingCost:   amountOrZero(fields.Get(extract.FieldShippingCost)).StringFixed(2),
		TotalAmount:    derived.TotalAmount,
		TaxAmount:      derived.TaxAmount,
		ShippingMethod: derived.Method,
		ShippingLabel:  derived.MethodLabel,
		IsPickup:       derived.IsPickup,
	}
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func positiveIntOr(value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
