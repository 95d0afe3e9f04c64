package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OrderStatus represents the status of an order
type OrderStatus int

const (
	OrderStatusPending   OrderStatus = 0
	OrderStatusPreparing OrderStatus = 1
	OrderStatusReady     OrderStatus = 2
	OrderStatusDelivered OrderStatus = 3
	OrderStatusCancelled OrderStatus = 4
)

func (s OrderStatus) String() string {
	names := [...]string{"pending", "preparing", "ready", "delivered", "cancelled"}
	if int(s) < 0 || int(s) >= len(names) {
		return "pending"
	}
	return names[s]
}

// ParseOrderStatus converts a wire value like "ready" to an OrderStatus.
// Unknown values report false.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch s {
	case "pending":
		return OrderStatusPending, true
	case "preparing":
		return OrderStatusPreparing, true
	case "ready":
		return OrderStatusReady, true
	case "delivered":
		return OrderStatusDelivered, true
	case "cancelled":
		return OrderStatusCancelled, true
	}
	return OrderStatusPending, false
}

// IsTerminal reports whether no further transition is permitted.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the state machine permits moving to
// the given status. Delivered and cancelled are terminal; the kitchen
// flow is pending -> preparing -> ready -> delivered, and any
// non-terminal order may be delivered or cancelled directly.
func (s OrderStatus) CanTransitionTo(to OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch to {
	case OrderStatusDelivered, OrderStatusCancelled:
		return true
	case OrderStatusPreparing:
		return s == OrderStatusPending
	case OrderStatusReady:
		return s == OrderStatusPending || s == OrderStatusPreparing
	}
	return false
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
	if parsed, ok := ParseOrderStatus(str); ok {
		*s = parsed
	}
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
