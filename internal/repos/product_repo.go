package repos

import (
	"strings"

	"github.com/claretax/apartmart/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id,name,description,price,images_json,category,stock,status,created_by,created_at,updated_at`

// ProductFilter drives catalog list reads. ActiveOnly is set for public and
// resident callers.
type ProductFilter struct {
	Category   string
	Search     string
	ActiveOnly bool
	Limit      int
	Skip       int
}

func (r *ProductRepo) Get(id string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) List(f ProductFilter) ([]domain.Product, error) {
	where := []string{`1=1`}
	args := []any{}
	if f.ActiveOnly {
		where = append(where, `status='active'`)
	}
	if f.Category != "" {
		where = append(where, `category=?`)
		args = append(args, f.Category)
	}
	if f.Search != "" {
		where = append(where, `(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)`)
		needle := "%" + strings.ToLower(f.Search) + "%"
		args = append(args, needle, needle)
	}
	if f.Limit <= 0 {
		f.Limit = 50
	}

	q := `SELECT ` + productCols + ` FROM products WHERE ` + strings.Join(where, " AND ") + `
	  ORDER BY created_at DESC, id LIMIT ? OFFSET ?`
	args = append(args, f.Limit, f.Skip)

	var out []domain.Product
	err := r.db.Select(&out, q, args...)
	return out, err
}

func (r *ProductRepo) Insert(p *domain.Product) error {
	_, err := r.db.Exec(`
		INSERT INTO products(id,name,description,price,images_json,category,stock,status,created_by,created_at,updated_at)
		VALUES(?,?,?,?,?,?,?,?,?,?,?)
	`, p.ID, p.Name, p.Description, p.Price, p.ImagesJSON, p.Category, p.Stock, p.Status, p.CreatedBy, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *ProductRepo) Update(p *domain.Product) error {
	_, err := r.db.Exec(`
		UPDATE products SET name=?, description=?, price=?, images_json=?, category=?, stock=?, status=?, updated_at=?
		WHERE id=?
	`, p.Name, p.Description, p.Price, p.ImagesJSON, p.Category, p.Stock, p.Status, p.UpdatedAt, p.ID)
	return err
}

func (r *ProductRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	return err
}
