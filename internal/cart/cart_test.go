package cart

import "testing"

func sample() *Cart {
	c := &Cart{}
	c.Add(Item{ProductID: "prod-1", Name: "Unicorn Stationery Set", Price: 899, Quantity: 2})
	c.Add(Item{ProductID: "prod-7", Name: "Gel Pens Set", Price: 299, Quantity: 1})
	return c
}

func TestAddMergesByProduct(t *testing.T) {
	c := &Cart{}
	c.Add(Item{ProductID: "prod-1", Price: 899})
	c.Add(Item{ProductID: "prod-1", Price: 899, Quantity: 2})
	c.Add(Item{ProductID: "prod-7", Price: 299})

	if len(c.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(c.Items))
	}
	if c.Items[0].Quantity != 3 {
		t.Fatalf("expected merged quantity 3, got %d", c.Items[0].Quantity)
	}
	// quantity omitted means one unit
	if c.Items[1].Quantity != 1 {
		t.Fatalf("expected default quantity 1, got %d", c.Items[1].Quantity)
	}
}

func TestDecrementRemovesAtZero(t *testing.T) {
	c := sample()
	c.Decrement("prod-1")
	if c.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", c.Items[0].Quantity)
	}
	c.Decrement("prod-1")
	if len(c.Items) != 1 || c.Items[0].ProductID != "prod-7" {
		t.Fatalf("expected prod-1 line removed: %v", c.Items)
	}
	// decrementing something not in the cart is a no-op
	c.Decrement("prod-9")
	if len(c.Items) != 1 {
		t.Fatal("decrement of absent product changed the cart")
	}
}

func TestRemoveDropsWholeLine(t *testing.T) {
	c := sample()
	c.Remove("prod-1")
	if len(c.Items) != 1 || c.Items[0].ProductID != "prod-7" {
		t.Fatalf("unexpected items: %v", c.Items)
	}
}

func TestCountAndTotal(t *testing.T) {
	c := sample()
	if c.Count() != 3 {
		t.Fatalf("Count = %d, want 3", c.Count())
	}
	if c.Total() != 2097 {
		t.Fatalf("Total = %d, want 2097", c.Total())
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := sample()
	b, err := c.Encode()
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(b)
	if err != nil {
		t.Fatal(err)
	}
	if got.Count() != c.Count() || got.Total() != c.Total() {
		t.Fatalf("round trip changed the cart: %v", got)
	}

	if _, err := Decode([]byte("{broken")); err == nil {
		t.Fatal("expected decode error for malformed payload")
	}
}

func TestCheckoutPayload(t *testing.T) {
	c := sample()
	in := c.CheckoutPayload("Tower A, Floor 5, Flat 502")
	if len(in.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(in.Items))
	}
	if in.Total != 2097 {
		t.Fatalf("Total = %d, want 2097", in.Total)
	}
	if in.DeliveryAddress != "Tower A, Floor 5, Flat 502" {
		t.Fatalf("unexpected address %q", in.DeliveryAddress)
	}
	if in.Items[0].ProductID != "prod-1" || in.Items[0].Quantity != 2 {
		t.Fatalf("unexpected first item: %v", in.Items[0])
	}
}

func TestApplyResultClearsOnSuccessOnly(t *testing.T) {
	c := sample()
	if c.ApplyResult(CheckoutResult{Success: false, Message: "Order must contain items"}) {
		t.Fatal("failed checkout must not clear the cart")
	}
	if c.Count() != 3 {
		t.Fatal("cart changed after failed checkout")
	}
	if !c.ApplyResult(CheckoutResult{Success: true, OrderID: "ord-1"}) {
		t.Fatal("confirmed checkout should clear the cart")
	}
	if c.Count() != 0 || len(c.Items) != 0 {
		t.Fatal("cart not cleared after confirmed checkout")
	}
}
