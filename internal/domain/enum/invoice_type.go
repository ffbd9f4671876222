package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// InvoiceType distinguishes purchase invoices (incoming stock) from sale
// invoices (outgoing stock)
type InvoiceType int

const (
	InvoiceTypePurchase InvoiceType = 0
	InvoiceTypeSale     InvoiceType = 1
)

func (t InvoiceType) String() string {
	switch t {
	case InvoiceTypePurchase:
		return "purchase"
	case InvoiceTypeSale:
		return "sale"
	}
	return "unknown"
}

func (t InvoiceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *InvoiceType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = InvoiceType(i)
		return nil
	}
	switch str {
	case "purchase":
		*t = InvoiceTypePurchase
	case "sale":
		*t = InvoiceTypeSale
	}
	return nil
}

func (t InvoiceType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *InvoiceType) Scan(value interface{}) error {
	if value == nil {
		*t = InvoiceTypePurchase
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = InvoiceType(v)
	case int:
		*t = InvoiceType(v)
	}
	return nil
}
