package extract

// Field names produced by the extractor. Any field may be absent when its
// rule missed and declared no fallback.
const (
	FieldOrderNumber  = "orderNumber"
	FieldDate         = "date"
	FieldCustomerName = "customerName"
	FieldEmail        = "email"
	FieldDescription  = "description"
	FieldQuantity     = "quantity"
	FieldUnitPrice    = "unitPrice"
	FieldShippingCost = "shippingCost"
	FieldPickup       = "pickup"
	FieldReportedTax  = "reportedTax"
)

// Fields is the mutable intermediate mapping from field name to extracted
// string value. It is built field by field during one extraction pass and
// discarded once the order record is assembled.
type Fields map[string]string

// Get returns the value for name, or empty when the field is absent.
func (f Fields) Get(name string) string {
	return f[name]
}

// Has reports whether the field was populated by a rule or fallback.
func (f Fields) Has(name string) bool {
	_, ok := f[name]
	return ok
}

// Bool interprets the field as a boolean flag. Absent fields are false.
func (f Fields) Bool(name string) bool {
	return f[name] == "true"
}
