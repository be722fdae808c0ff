package domain

import "encoding/json"

// OrderStatus is the closed order lifecycle enum.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

// transitions is the single source of truth for the lifecycle:
// pending -> processing -> shipped -> delivered, cancellation only out of
// pending or processing. delivered and cancelled are terminal.
var transitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered},
}

func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return len(transitions[s]) == 0
}

// OrderItem is an immutable snapshot of a product at checkout time,
// deliberately decoupled from live catalog state.
type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     int    `json:"price"`
}

type Order struct {
	ID              string `db:"id"`
	UserID          string `db:"user_id"`
	ItemsJSON       string `db:"items_json"`
	Total           int    `db:"total"`
	Status          string `db:"status"`
	DeliveryAddress string `db:"delivery_address"`
	AgentID         string `db:"agent_id"`
	CreatedAt       string `db:"created_at"`
	UpdatedAt       string `db:"updated_at"`
}

func (o *Order) Items() []OrderItem {
	var out []OrderItem
	if o.ItemsJSON != "" {
		_ = json.Unmarshal([]byte(o.ItemsJSON), &out)
	}
	return out
}

// ItemSum recomputes the line-item total; used to audit-log mismatches
// against the client-supplied total.
func (o *Order) ItemSum() int {
	sum := 0
	for _, it := range o.Items() {
		sum += it.Price * it.Quantity
	}
	return sum
}

type PublicOrder struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId"`
	Items           []OrderItem `json:"items"`
	Total           int         `json:"total"`
	Status          string      `json:"status"`
	DeliveryAddress string      `json:"deliveryAddress"`
	AgentID         string      `json:"agentId,omitempty"`
	CreatedAt       string      `json:"createdAt"`
	UpdatedAt       string      `json:"updatedAt"`
}

func (o *Order) Public() PublicOrder {
	return PublicOrder{
		ID:              o.ID,
		UserID:          o.UserID,
		Items:           o.Items(),
		Total:           o.Total,
		Status:          o.Status,
		DeliveryAddress: o.DeliveryAddress,
		AgentID:         o.AgentID,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
