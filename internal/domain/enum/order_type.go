package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OrderType distinguishes walk-in orders from scheduled pre-orders
type OrderType int

const (
	OrderTypeInstant  OrderType = 0
	OrderTypePreorder OrderType = 1
)

func (t OrderType) String() string {
	if t == OrderTypePreorder {
		return "preorder"
	}
	return "instant"
}

// ParseOrderType converts a wire value to an OrderType. Unknown values
// report false.
func ParseOrderType(s string) (OrderType, bool) {
	switch s {
	case "instant":
		return OrderTypeInstant, true
	case "preorder":
		return OrderTypePreorder, true
	}
	return OrderTypeInstant, false
}

func (t OrderType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *OrderType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = OrderType(i)
		return nil
	}
	if parsed, ok := ParseOrderType(str); ok {
		*t = parsed
	}
	return nil
}

func (t OrderType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *OrderType) Scan(value interface{}) error {
	if value == nil {
		*t = OrderTypeInstant
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = OrderType(v)
	case int:
		*t = OrderType(v)
	}
	return nil
}
