package order

import (
	"github.com/shopspring/decimal"

	"github.com/limetreebower/invoicegen/internal/extract"
)

// gstDivisor back-calculates the tax component of a 10%-inclusive total:
// a total that already includes 10% GST carries tax equal to total/11.
var gstDivisor = decimal.NewFromInt(11)

// Derived holds the values computed from the extracted numeric fields.
type Derived struct {
	TotalAmount string
	TaxAmount   string
	Method      ShippingMethod
	MethodLabel string
	IsPickup    bool
}

// Derive computes totals, tax and the shipping method from the extracted
// fields. Missing or unparseable numeric inputs are treated as zero so the
// arithmetic never fails; the result is always internally consistent.
func Derive(fields extract.Fields, defaults Defaults) Derived {
	price := amountOrZero(fields.Get(extract.FieldUnitPrice))
	shipping := amountOrZero(fields.Get(extract.FieldShippingCost))

	total := price.Add(shipping).Round(2)
	tax := total.Div(gstDivisor).Round(2)

	derived := Derived{
		TotalAmount: total.StringFixed(2),
		TaxAmount:   tax.StringFixed(2),
		Method:      ShippingMethodDelivery,
		MethodLabel: defaults.DeliveryLabel,
	}
	if fields.Bool(extract.FieldPickup) {
		derived.Method = ShippingMethodPickup
		derived.MethodLabel = defaults.PickupLabel
		derived.IsPickup = true
	}
	return derived
}

// TaxMatchesReported checks the back-calculated tax against the GST line
// reported by the source document, when one was extracted. The reported
// amount never overrides the derived one; a mismatch is only worth logging.
func (d Derived) TaxMatchesReported(fields extract.Fields) bool {
	reported := fields.Get(extract.FieldReportedTax)
	if reported == "" {
		return true
	}
	return amountOrZero(reported).Equal(amountOrZero(d.TaxAmount))
}

func amountOrZero(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
