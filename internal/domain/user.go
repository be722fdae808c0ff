package domain

import "encoding/json"

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

func ParseUserStatus(s string) (UserStatus, bool) {
	switch UserStatus(s) {
	case UserActive, UserInactive:
		return UserStatus(s), true
	}
	return "", false
}

// Apartment is the descriptor required for resident accounts.
type Apartment struct {
	Tower      string `json:"tower"`
	Floor      string `json:"floor"`
	FlatNumber string `json:"flatNumber"`
}

func (a Apartment) Complete() bool {
	return a.Tower != "" && a.Floor != "" && a.FlatNumber != ""
}

// User is the persisted account row. The apartment descriptor is stored as a
// JSON column, same pattern as product images.
type User struct {
	ID            string `db:"id"`
	Username      string `db:"username"`
	Email         string `db:"email"`
	Hash          string `db:"password_hash"`
	Role          Role   `db:"role"`
	Status        string `db:"status"`
	ApartmentJSON string `db:"apartment_json"`
	CreatedAt     string `db:"created_at"`
	UpdatedAt     string `db:"updated_at"`
}

// LogID feeds the structured log without exposing the rest of the row.
func (u *User) LogID() (string, string) { return u.ID, string(u.Role) }

func (u *User) Apartment() *Apartment {
	if u.ApartmentJSON == "" {
		return nil
	}
	var a Apartment
	if err := json.Unmarshal([]byte(u.ApartmentJSON), &a); err != nil {
		return nil
	}
	return &a
}

// PublicUser is the password-stripped view every read endpoint returns.
type PublicUser struct {
	ID               string     `json:"id"`
	Username         string     `json:"username"`
	Email            string     `json:"email"`
	Role             Role       `json:"role"`
	Status           string     `json:"status"`
	ApartmentDetails *Apartment `json:"apartmentDetails,omitempty"`
	CreatedAt        string     `json:"createdAt"`
	UpdatedAt        string     `json:"updatedAt"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		Role:             u.Role,
		Status:           u.Status,
		ApartmentDetails: u.Apartment(),
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}
