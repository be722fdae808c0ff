package repos

import (
	"github.com/claretax/apartmart/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

const userCols = `id,username,email,password_hash,role,status,apartment_json,created_at,updated_at`

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByUsername(username string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE LOWER(username)=LOWER(?)`, username)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Exists reports whether the username or email is already taken, excluding
// exceptID (empty for create). The taken string distinguishes which collided.
func (r *UserRepo) Exists(username, email, exceptID string) (taken string, err error) {
	var n int
	if err = r.DB.Get(&n, `SELECT COUNT(*) FROM users WHERE LOWER(username)=LOWER(?) AND id!=?`, username, exceptID); err != nil {
		return "", err
	}
	if n > 0 {
		return "username", nil
	}
	if err = r.DB.Get(&n, `SELECT COUNT(*) FROM users WHERE LOWER(email)=LOWER(?) AND id!=?`, email, exceptID); err != nil {
		return "", err
	}
	if n > 0 {
		return "email", nil
	}
	return "", nil
}

func (r *UserRepo) List() ([]domain.User, error) {
	var out []domain.User
	err := r.DB.Select(&out, `SELECT `+userCols+` FROM users ORDER BY created_at DESC, id`)
	return out, err
}

func (r *UserRepo) Insert(u *domain.User) error {
	_, err := r.DB.Exec(`
		INSERT INTO users(id,username,email,password_hash,role,status,apartment_json,created_at,updated_at)
		VALUES(?,?,?,?,?,?,?,?,?)
	`, u.ID, u.Username, u.Email, u.Hash, u.Role, u.Status, u.ApartmentJSON, u.CreatedAt, u.UpdatedAt)
	return err
}

func (r *UserRepo) Update(u *domain.User) error {
	_, err := r.DB.Exec(`
		UPDATE users SET username=?, email=?, password_hash=?, role=?, status=?, apartment_json=?, updated_at=?
		WHERE id=?
	`, u.Username, u.Email, u.Hash, u.Role, u.Status, u.ApartmentJSON, u.UpdatedAt, u.ID)
	return err
}

func (r *UserRepo) Delete(id string) error {
	_, err := r.DB.Exec(`DELETE FROM users WHERE id=?`, id)
	return err
}
