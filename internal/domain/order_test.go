package domain

import "testing"

func TestOrderTransitions(t *testing.T) {
	allowed := map[[2]OrderStatus]bool{
		{OrderPending, OrderProcessing}:   true,
		{OrderPending, OrderCancelled}:    true,
		{OrderProcessing, OrderShipped}:   true,
		{OrderProcessing, OrderCancelled}: true,
		{OrderShipped, OrderDelivered}:    true,
	}

	all := []OrderStatus{OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled}
	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]OrderStatus{from, to}]
			if got := from.CanTransition(to); got != want {
				t.Errorf("%s -> %s: got %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestOrderTerminalStates(t *testing.T) {
	for _, tc := range []struct {
		st       OrderStatus
		terminal bool
	}{
		{OrderPending, false},
		{OrderProcessing, false},
		{OrderShipped, false},
		{OrderDelivered, true},
		{OrderCancelled, true},
	} {
		if got := tc.st.Terminal(); got != tc.terminal {
			t.Errorf("%s.Terminal() = %v, want %v", tc.st, got, tc.terminal)
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	if st, ok := ParseOrderStatus("shipped"); !ok || st != OrderShipped {
		t.Fatalf("shipped: got %q, %v", st, ok)
	}
	for _, bad := range []string{"", "Pending", "teleported", "SHIPPED"} {
		if _, ok := ParseOrderStatus(bad); ok {
			t.Errorf("%q should not parse", bad)
		}
	}
}

func TestOrderItemSum(t *testing.T) {
	o := &Order{ItemsJSON: `[{"productId":"p1","name":"a","quantity":2,"price":899},{"productId":"p2","name":"b","quantity":1,"price":299}]`}
	if got := o.ItemSum(); got != 2097 {
		t.Fatalf("ItemSum = %d, want 2097", got)
	}
	empty := &Order{}
	if got := empty.ItemSum(); got != 0 {
		t.Fatalf("empty ItemSum = %d, want 0", got)
	}
}
