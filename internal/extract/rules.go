package extract

// RuleDefaults carries the configurable fallback values and match phrases
// the default rule set is built from.
type RuleDefaults struct {
	// Date used when no order date can be found in the text.
	Date string
	// Description used when the product phrase is absent.
	Description string
	// ProductPhrase is the known product-name phrase, in canonical spacing.
	ProductPhrase string
	// CarrierPhrase is the labeled shipping-carrier phrase, in canonical spacing.
	CarrierPhrase string
	// ShippingFlatRate is the carrier's flat rate, applied when only the
	// narrower amount-shaped pattern matches. Two fractional digits.
	ShippingFlatRate string
	// EmailFallback is reported when no contact email is present.
	EmailFallback string
}

// DefaultRules returns the rule set for Shopify order confirmation pages.
// Rules are independent: each is matched against the normalized text on its
// own, and a miss resolves to the rule's declared fallbacks without touching
// any other rule's outcome.
func DefaultRules(d RuleDefaults) []FieldRule {
	return []FieldRule{
		{
			Name:     "order_number",
			Pattern:  `#(\d+)`,
			Captures: []string{FieldOrderNumber},
		},
		{
			Name:      "order_date",
			Pattern:   `(\d{1,2} [A-Za-z]+ 20\d{2})`,
			Captures:  []string{FieldDate},
			Fallbacks: map[string]string{FieldDate: d.Date},
		},
		{
			Name:     "unit_price_quantity",
			Pattern:  `\$(\d+\.\d{2})\s*×\s*(\d+)`,
			Captures: []string{FieldUnitPrice, FieldQuantity},
			Numeric:  []string{FieldUnitPrice, FieldQuantity},
			Fallbacks: map[string]string{
				FieldQuantity: "1",
			},
		},
		{
			Name:       "shipping_cost",
			Pattern:    SpacedPattern(d.CarrierPhrase) + `.*?\$\s*(\d+\.\d{2})`,
			Captures:   []string{FieldShippingCost},
			Numeric:    []string{FieldShippingCost},
			AltPattern: SpacedPattern("$" + d.ShippingFlatRate),
			AltValues:  map[string]string{FieldShippingCost: d.ShippingFlatRate},
			Fallbacks:  map[string]string{FieldShippingCost: "0.00"},
		},
		{
			Name:       "description",
			Pattern:    `(` + SpacedPattern(d.ProductPhrase) + `)`,
			Captures:   []string{FieldDescription},
			Reassemble: true,
			Fallbacks:  map[string]string{FieldDescription: d.Description},
		},
		{
			Name:       "pickup_flag",
			Pattern:    SpacedPattern("Pickup"),
			SetOnMatch: map[string]string{FieldPickup: "true"},
			Fallbacks:  map[string]string{FieldPickup: "false"},
		},
		{
			Name:     "customer_name",
			Pattern:  `Customer\s+(.+?)\s+(?:Contact information|Shipping address)`,
			Captures: []string{FieldCustomerName},
		},
		{
			Name:      "contact_email",
			Pattern:   `Contact information\s+([^\s@]+@[^\s]+)`,
			Captures:  []string{FieldEmail},
			Fallbacks: map[string]string{FieldEmail: d.EmailFallback},
		},
		{
			// The source document reports its own GST line. The captured
			// amount is kept for cross-checking only; the canonical tax is
			// always back-calculated from the GST-inclusive total.
			Name:     "reported_gst",
			Pattern:  `GST\s+10%\s+\(Included\)\s+\$(\d+\.\d{2})`,
			Captures: []string{FieldReportedTax},
			Numeric:  []string{FieldReportedTax},
		},
	}
}
