// Package cart models the shopper's device-local cart: an explicit value
// object the browser keeps in local storage. It has no server identity; its
// only contract with the backend is the checkout payload shape and the
// result it must interpret.
package cart

import (
	"encoding/json"

	"github.com/claretax/apartmart/internal/domain"
	"github.com/claretax/apartmart/internal/services"
)

type Item struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Image     string `json:"image"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
}

type Cart struct {
	Items []Item `json:"items"`
}

// Add merges by product id, incrementing quantity on repeated adds.
func (c *Cart) Add(it Item) {
	if it.Quantity < 1 {
		it.Quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == it.ProductID {
			c.Items[i].Quantity += it.Quantity
			return
		}
	}
	c.Items = append(c.Items, it)
}

// Decrement lowers the quantity by one, removing the line at zero.
func (c *Cart) Decrement(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity--
			if c.Items[i].Quantity <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			}
			return
		}
	}
}

func (c *Cart) Remove(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Count is the total item quantity, the badge number in the UI.
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Total() int {
	sum := 0
	for _, it := range c.Items {
		sum += it.Price * it.Quantity
	}
	return sum
}

func (c *Cart) Clear() { c.Items = nil }

// Encode/Decode are the serialize boundary to device-local storage.
func (c *Cart) Encode() ([]byte, error) { return json.Marshal(c) }

func Decode(b []byte) (*Cart, error) {
	var c Cart
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// CheckoutPayload transforms the cart into the order-creation request body.
func (c *Cart) CheckoutPayload(deliveryAddress string) services.CreateOrderInput {
	items := make([]domain.OrderItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, domain.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return services.CreateOrderInput{
		Items:           items,
		Total:           c.Total(),
		DeliveryAddress: deliveryAddress,
	}
}

// CheckoutResult is the server response shape the cart interprets. The cart
// clears only after Success is confirmed.
type CheckoutResult struct {
	Success       bool   `json:"success"`
	OrderID       string `json:"orderId,omitempty"`
	Message       string `json:"message,omitempty"`
	RequiresLogin bool   `json:"requiresLogin,omitempty"`
}

// ApplyResult clears the cart on a confirmed order and reports whether it did.
func (c *Cart) ApplyResult(r CheckoutResult) bool {
	if !r.Success {
		return false
	}
	c.Clear()
	return true
}
