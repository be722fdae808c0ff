package services_test

import (
	"errors"
	"testing"

	"github.com/claretax/apartmart/internal/domain"
	"github.com/claretax/apartmart/internal/repos"
	"github.com/claretax/apartmart/internal/services"
)

func seededUsers(t *testing.T, users *repos.UserRepo) (resident, agent, admin *domain.User) {
	t.Helper()
	for _, pair := range []struct {
		id  string
		out **domain.User
	}{
		{"user-demo", &resident}, {"user-agent", &agent}, {"user-admin", &admin},
	} {
		u, err := users.ByID(pair.id)
		if err != nil {
			t.Fatalf("load %s: %v", pair.id, err)
		}
		*pair.out = u
	}
	return
}

func TestOrderFlow_CheckoutClaimDeliver(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	userRepo := repos.NewUserRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	orderSvc := services.NewOrderService(orderRepo)

	resident, agent, admin := seededUsers(t, userRepo)

	o, err := orderSvc.Create(resident, services.CreateOrderInput{
		Items: []domain.OrderItem{
			{ProductID: "prod-1", Name: "Unicorn Stationery Set", Quantity: 2, Price: 899},
			{ProductID: "prod-7", Name: "Gel Pens Set", Quantity: 1, Price: 299},
		},
		Total:           2097,
		DeliveryAddress: "Tower A, Floor 5, Flat 502",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if o.Status != string(domain.OrderPending) || o.AgentID != "" {
		t.Fatalf("new order should be pending and unassigned: %+v", o)
	}
	if o.ItemSum() != 2097 {
		t.Fatalf("ItemSum = %d, want 2097", o.ItemSum())
	}

	// agent claims it and becomes the assignee
	o, err = orderSvc.UpdateStatus(agent, o.ID, "processing")
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if o.AgentID != agent.ID {
		t.Fatalf("AgentID = %q, want %q", o.AgentID, agent.ID)
	}

	// a second agent cannot touch it
	other := *agent
	other.ID = "user-agent-2"
	if _, err := orderSvc.UpdateStatus(&other, o.ID, "shipped"); !errors.Is(err, services.ErrForbidden) {
		t.Fatalf("foreign agent: got %v, want ErrForbidden", err)
	}

	// admin can, without stealing the assignment
	o, err = orderSvc.UpdateStatus(admin, o.ID, "shipped")
	if err != nil {
		t.Fatalf("admin advance: %v", err)
	}
	if o.AgentID != agent.ID {
		t.Fatalf("admin advance reassigned the order to %q", o.AgentID)
	}

	// skipping ahead is refused, the next legal step is not
	if _, err := orderSvc.UpdateStatus(agent, o.ID, "pending"); !errors.Is(err, services.ErrInvalidTransition) {
		t.Fatalf("backwards move: got %v, want ErrInvalidTransition", err)
	}
	o, err = orderSvc.UpdateStatus(agent, o.ID, "delivered")
	if err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if !domain.OrderStatus(o.Status).Terminal() {
		t.Fatal("delivered should be terminal")
	}

	// residents read their own orders only
	if _, err := orderSvc.Get(resident, o.ID); err != nil {
		t.Fatalf("owner read: %v", err)
	}
	stranger := *resident
	stranger.ID = "user-someone-else"
	if _, err := orderSvc.Get(&stranger, o.ID); !errors.Is(err, services.ErrForbidden) {
		t.Fatalf("stranger read: got %v, want ErrForbidden", err)
	}
}
