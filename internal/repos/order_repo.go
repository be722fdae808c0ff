package repos

import (
	"github.com/claretax/apartmart/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

const orderCols = `id,user_id,items_json,total,status,delivery_address,agent_id,created_at,updated_at`

func (r *OrderRepo) Get(id string) (*domain.Order, error) {
	var o domain.Order
	err := r.db.Get(&o, `SELECT `+orderCols+` FROM orders WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) Insert(o *domain.Order) error {
	_, err := r.db.Exec(`
		INSERT INTO orders(id,user_id,items_json,total,status,delivery_address,agent_id,created_at,updated_at)
		VALUES(?,?,?,?,?,?,?,?,?)
	`, o.ID, o.UserID, o.ItemsJSON, o.Total, o.Status, o.DeliveryAddress, o.AgentID, o.CreatedAt, o.UpdatedAt)
	return err
}

// SetStatus writes status, agent assignment and updated_at in one row update.
func (r *OrderRepo) SetStatus(id, status, agentID, updatedAt string) error {
	_, err := r.db.Exec(`UPDATE orders SET status=?, agent_id=?, updated_at=? WHERE id=?`,
		status, agentID, updatedAt, id)
	return err
}

func (r *OrderRepo) ListByUser(userID string) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Select(&out, `
		SELECT `+orderCols+` FROM orders WHERE user_id=?
		ORDER BY created_at DESC, id
	`, userID)
	return out, err
}

// ListForAgent returns the agent's backlog plus claimable work: orders
// assigned to them or still pending/processing.
func (r *OrderRepo) ListForAgent(agentID string) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Select(&out, `
		SELECT `+orderCols+` FROM orders
		WHERE agent_id=? OR status IN ('pending','processing')
		ORDER BY created_at DESC, id
	`, agentID)
	return out, err
}

func (r *OrderRepo) ListAll() ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Select(&out, `SELECT `+orderCols+` FROM orders ORDER BY created_at DESC, id`)
	return out, err
}
