package services

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/claretax/apartmart/internal/domain"
	"github.com/claretax/apartmart/internal/repos"

	"github.com/google/uuid"
)

type OrderService struct {
	Orders *repos.OrderRepo
}

func NewOrderService(orders *repos.OrderRepo) *OrderService {
	return &OrderService{Orders: orders}
}

type CreateOrderInput struct {
	Items           []domain.OrderItem `json:"items"`
	Total           int                `json:"total"`
	DeliveryAddress string             `json:"deliveryAddress"`
}

// Create opens a new order at checkout: status=pending, no agent. The total
// is stored as given by the client (trust boundary); callers should compare
// it against ItemSum for the audit log.
func (s *OrderService) Create(caller *domain.User, in CreateOrderInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, invalid("Order must contain items")
	}
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity < 1 {
			return nil, invalid("Order must contain items")
		}
	}
	if in.Total <= 0 || in.DeliveryAddress == "" {
		return nil, invalid("Total and delivery address are required")
	}

	ij, _ := json.Marshal(in.Items)
	now := repos.Now()
	o := &domain.Order{
		ID:              uuid.NewString(),
		UserID:          caller.ID,
		ItemsJSON:       string(ij),
		Total:           in.Total,
		Status:          string(domain.OrderPending),
		DeliveryAddress: in.DeliveryAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Orders.Insert(o); err != nil {
		return nil, err
	}
	return o, nil
}

// Get applies row-level scoping: residents read their own orders, agents read
// assigned or still-claimable work, admins read anything.
func (s *OrderService) Get(caller *domain.User, id string) (*domain.Order, error) {
	o, err := s.Orders.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !readable(caller, o) {
		return nil, ErrForbidden
	}
	return o, nil
}

func readable(caller *domain.User, o *domain.Order) bool {
	switch caller.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleAgent:
		return o.AgentID == caller.ID ||
			o.Status == string(domain.OrderPending) ||
			o.Status == string(domain.OrderProcessing)
	case domain.RoleResident:
		return o.UserID == caller.ID
	}
	return false
}

// ListFor returns the caller's role-filtered view of the ledger.
func (s *OrderService) ListFor(caller *domain.User) ([]domain.Order, error) {
	switch caller.Role {
	case domain.RoleAdmin:
		return s.Orders.ListAll()
	case domain.RoleAgent:
		return s.Orders.ListForAgent(caller.ID)
	case domain.RoleResident:
		return s.Orders.ListByUser(caller.ID)
	}
	return nil, ErrForbidden
}

// UpdateStatus drives the lifecycle: pending -> processing -> shipped ->
// delivered, cancellation out of pending or processing. An agent claiming a
// pending order is written into agent_id exactly once; later moves require
// that agent or an admin. Resubmitting the current status is a no-op.
func (s *OrderService) UpdateStatus(caller *domain.User, id, status string) (*domain.Order, error) {
	next, ok := domain.ParseOrderStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	o, err := s.Orders.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	cur := domain.OrderStatus(o.Status)

	switch caller.Role {
	case domain.RoleAdmin:
		// unrestricted
	case domain.RoleAgent:
		// Pending orders are open work any agent may claim or cancel;
		// afterwards only the assigned agent may act.
		if cur != domain.OrderPending && o.AgentID != caller.ID {
			return nil, ErrForbidden
		}
	default:
		return nil, ErrForbidden
	}

	if next == cur {
		return o, nil
	}
	if !cur.CanTransition(next) {
		return nil, ErrInvalidTransition
	}

	if caller.Role == domain.RoleAgent && cur == domain.OrderPending &&
		next == domain.OrderProcessing && o.AgentID == "" {
		o.AgentID = caller.ID
	}
	o.Status = string(next)
	o.UpdatedAt = repos.Now()

	if err := s.Orders.SetStatus(o.ID, o.Status, o.AgentID, o.UpdatedAt); err != nil {
		return nil, err
	}
	return o, nil
}
