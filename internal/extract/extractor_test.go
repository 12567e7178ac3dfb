package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDefaults() RuleDefaults {
	return RuleDefaults{
		Date:             "13 November 2024",
		Description:      "Buongiorno Positano! Large / Clear Glass Vase",
		ProductPhrase:    "Buongiorno Positano! Large / Clear Glass Vase",
		CarrierPhrase:    "Shipping Fresh Courier Delivery",
		ShippingFlatRate: "19.00",
		EmailFallback:    "No email provided",
	}
}

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	extractor, err := NewDefaultExtractor(testDefaults())
	require.NoError(t, err)
	return extractor
}

func TestNewExtractor_InvalidPattern(t *testing.T) {
	_, err := NewExtractor([]FieldRule{
		{Name: "broken", Pattern: `([`},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestExtract_OrderNumber(t *testing.T) {
	extractor := newTestExtractor(t)

	fields := extractor.Extract("Order #1001 confirmed")
	assert.Equal(t, "1001", fields.Get(FieldOrderNumber))
}

func TestExtract_NoOrderNumberLeavesOthersUntouched(t *testing.T) {
	extractor := newTestExtractor(t)

	fields := extractor.Extract("Order confirmed 15 March 2024 $45.00 × 2")
	assert.False(t, fields.Has(FieldOrderNumber))
	assert.Equal(t, "15 March 2024", fields.Get(FieldDate))
	assert.Equal(t, "45.00", fields.Get(FieldUnitPrice))
	assert.Equal(t, "2", fields.Get(FieldQuantity))
}

func TestExtract_UnitPriceAndQuantity(t *testing.T) {
	extractor := newTestExtractor(t)

	fields := extractor.Extract("Buongiorno Positano! $45.00 × 2")
	assert.Equal(t, "45.00", fields.Get(FieldUnitPrice))
	assert.Equal(t, "2", fields.Get(FieldQuantity))
}

func TestExtract_QuantityDefaultsToOne(t *testing.T) {
	extractor := newTestExtractor(t)

	fields := extractor.Extract("no price line here")
	assert.False(t, fields.Has(FieldUnitPrice))
	assert.Equal(t, "1", fields.Get(FieldQuantity))
}

func TestExtract_DateFallback(t *testing.T) {
	extractor := newTestExtractor(t)

	fields := extractor.Extract("no date in this text")
	assert.Equal(t, "13 November 2024", fields.Get(FieldDate))
}

func TestExtract_ShippingCost(t *testing.T) {
	extractor := newTestExtractor(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "carrier phrase followed by amount",
			text: "Shipping Fresh Courier Delivery tomorrow $12.50",
			want: "12.50",
		},
		{
			name: "spaced-out carrier phrase",
			text: "S h i p p i n g F r e s h C o u r i e r D e l i v e r y ... $ 19.00",
			want: "19.00",
		},
		{
			name: "flat-rate amount without carrier phrase",
			text: "Subtotal $45.00 then $ 1 9 . 0 0 somewhere",
			want: "19.00",
		},
		{
			name: "no shipping information at all",
			text: "Order #1001",
			want: "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := extractor.Extract(tt.text)
			assert.Equal(t, tt.want, fields.Get(FieldShippingCost))
		})
	}
}

func TestExtract_DescriptionSpacingResilience(t *testing.T) {
	extractor := newTestExtractor(t)

	spaced := "B u o n g i o r n o P o s i t a n o ! L a r g e / C l e a r G l a s s V a s e"
	fields := extractor.Extract("Order #1001 " + spaced + " $45.00 × 1")
	assert.Equal(t, "Buongiorno Positano! Large / Clear Glass Vase", fields.Get(FieldDescription))
}

func TestExtract_DescriptionFallback(t *testing.T) {
	extractor := newTestExtractor(t)

	fields := extractor.Extract("Order #1001 some other product")
	assert.Equal(t, "Buongiorno Positano! Large / Clear Glass Vase", fields.Get(FieldDescription))
}

func TestExtract_PickupFlag(t *testing.T) {
	extractor := newTestExtractor(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "plain literal", text: "Pickup at the shop", want: "true"},
		{name: "spaced-out literal", text: "P i c k u p Northbridge", want: "true"},
		{name: "absent", text: "Fresh Courier Delivery $19.00", want: "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := extractor.Extract(tt.text)
			assert.Equal(t, tt.want, fields.Get(FieldPickup))
		})
	}
}

func TestExtract_CustomerAndEmail(t *testing.T) {
	extractor := newTestExtractor(t)

	text := "Customer Jane Citizen Contact information jane@example.com Shipping address 1 Example St"
	fields := extractor.Extract(text)
	assert.Equal(t, "Jane Citizen", fields.Get(FieldCustomerName))
	assert.Equal(t, "jane@example.com", fields.Get(FieldEmail))
}

func TestExtract_EmailFallback(t *testing.T) {
	extractor := newTestExtractor(t)

	fields := extractor.Extract("Customer Jane Citizen Shipping address 1 Example St")
	assert.Equal(t, "Jane Citizen", fields.Get(FieldCustomerName))
	assert.Equal(t, "No email provided", fields.Get(FieldEmail))
}

func TestExtract_ReportedGST(t *testing.T) {
	extractor := newTestExtractor(t)

	fields := extractor.Extract("GST 10% (Included) $5.91")
	assert.Equal(t, "5.91", fields.Get(FieldReportedTax))
}

func TestExtract_RulesAreIndependent(t *testing.T) {
	extractor := newTestExtractor(t)

	// Everything except the order number is garbage; the order number must
	// still come through and every other rule must resolve to its fallback.
	fields := extractor.Extract("#77")
	assert.Equal(t, "77", fields.Get(FieldOrderNumber))
	assert.Equal(t, "13 November 2024", fields.Get(FieldDate))
	assert.Equal(t, "1", fields.Get(FieldQuantity))
	assert.Equal(t, "0.00", fields.Get(FieldShippingCost))
	assert.Equal(t, "false", fields.Get(FieldPickup))
}

func TestExtract_UnparseableNumericCaptureFallsBack(t *testing.T) {
	extractor, err := NewExtractor([]FieldRule{
		{
			Name:      "amount",
			Pattern:   `total ([\d.]+)`,
			Captures:  []string{FieldUnitPrice},
			Numeric:   []string{FieldUnitPrice},
			Fallbacks: map[string]string{FieldUnitPrice: "0.00"},
		},
	})
	require.NoError(t, err)

	fields := extractor.Extract("total 1.2.3")
	assert.Equal(t, "0.00", fields.Get(FieldUnitPrice))
}

func TestExtractor_Rules(t *testing.T) {
	extractor := newTestExtractor(t)

	names := extractor.Rules()
	assert.Contains(t, names, "order_number")
	assert.Contains(t, names, "shipping_cost")
	assert.Contains(t, names, "pickup_flag")
	assert.Len(t, names, 9)
}
