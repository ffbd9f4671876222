package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// OrderStatus represents the fulfillment status of a storefront order
type OrderStatus int

const (
	OrderStatusPending   OrderStatus = 0
	OrderStatusConfirmed OrderStatus = 1
	OrderStatusCompleted OrderStatus = 2
)

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusPending:
		return "pending"
	case OrderStatusConfirmed:
		return "confirmed"
	case OrderStatusCompleted:
		return "completed"
	}
	return "unknown"
}

// ParseOrderStatus converts a status name into an OrderStatus
func ParseOrderStatus(str string) (OrderStatus, error) {
	switch str {
	case "pending":
		return OrderStatusPending, nil
	case "confirmed":
		return OrderStatusConfirmed, nil
	case "completed":
		return OrderStatusCompleted, nil
	}
	return OrderStatusPending, fmt.Errorf("unknown order status %q", str)
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OrderStatus(i)
		return nil
	}
	parsed, err := ParseOrderStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s OrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OrderStatus(v)
	case int:
		*s = OrderStatus(v)
	}
	return nil
}
