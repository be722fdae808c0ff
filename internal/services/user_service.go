package services

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/claretax/apartmart/internal/domain"
	"github.com/claretax/apartmart/internal/repos"
	"github.com/claretax/apartmart/internal/validate"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	Users *repos.UserRepo
}

func NewUserService(users *repos.UserRepo) *UserService { return &UserService{Users: users} }

func (s *UserService) List() ([]domain.User, error) {
	return s.Users.List()
}

// Get returns a user readable by the caller: admins, or the subject themself.
func (s *UserService) Get(caller *domain.User, id string) (*domain.User, error) {
	if !caller.Role.Can(domain.OpUserAdmin) && caller.ID != id {
		return nil, ErrForbidden
	}
	u, err := s.Users.ByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return u, err
}

type CreateUserInput struct {
	Username  string            `json:"username"`
	Email     string            `json:"email"`
	Password  string            `json:"password"`
	Role      string            `json:"role"`
	Apartment *domain.Apartment `json:"apartmentDetails"`
}

// Create is the admin path. Resident accounts require the full apartment
// descriptor here too, matching the signup path.
func (s *UserService) Create(in CreateUserInput) (*domain.User, error) {
	username, ok := validate.Username(in.Username)
	if !ok {
		return nil, invalid("Missing required field: username")
	}
	email, ok := validate.Email(in.Email)
	if !ok {
		return nil, invalid("Missing required field: email")
	}
	if !validate.Password(in.Password) {
		return nil, invalid("Missing required field: password")
	}
	role, ok := domain.ParseRole(in.Role)
	if !ok {
		return nil, invalid("Missing required field: role")
	}
	aj := ""
	if role == domain.RoleResident {
		if in.Apartment == nil || !in.Apartment.Complete() {
			return nil, invalid("Apartment details are required for residents")
		}
		b, _ := json.Marshal(in.Apartment)
		aj = string(b)
	}

	if taken, err := s.Users.Exists(username, email, ""); err != nil {
		return nil, err
	} else if taken == "username" {
		return nil, ErrDuplicateUsername
	} else if taken == "email" {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := repos.Now()
	u := &domain.User{
		ID:            uuid.NewString(),
		Username:      username,
		Email:         email,
		Hash:          string(hash),
		Role:          role,
		Status:        string(domain.UserActive),
		ApartmentJSON: aj,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Users.Insert(u); err != nil {
		return nil, err
	}
	return u, nil
}

type UpdateUserInput struct {
	Username  *string           `json:"username"`
	Email     *string           `json:"email"`
	Password  *string           `json:"password"`
	Role      *string           `json:"role"`
	Status    *string           `json:"status"`
	Apartment *domain.Apartment `json:"apartmentDetails"`
}

// Update applies an admin edit or a self-service edit. Non-admin callers may
// only change password and apartment details; disallowed fields are stripped
// from the payload silently, not rejected.
func (s *UserService) Update(caller *domain.User, id string, in UpdateUserInput) (*domain.User, error) {
	admin := caller.Role.Can(domain.OpUserAdmin)
	if !admin && caller.ID != id {
		return nil, ErrForbidden
	}

	u, err := s.Users.ByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !admin {
		in.Username, in.Email, in.Role, in.Status = nil, nil, nil, nil
	}

	if in.Username != nil {
		username, ok := validate.Username(*in.Username)
		if !ok {
			return nil, invalid("Invalid username")
		}
		u.Username = username
	}
	if in.Email != nil {
		email, ok := validate.Email(*in.Email)
		if !ok {
			return nil, invalid("Invalid email")
		}
		u.Email = email
	}
	if in.Username != nil || in.Email != nil {
		if taken, err := s.Users.Exists(u.Username, u.Email, u.ID); err != nil {
			return nil, err
		} else if taken == "username" {
			return nil, ErrDuplicateUsername
		} else if taken == "email" {
			return nil, ErrDuplicateEmail
		}
	}
	if in.Password != nil {
		if !validate.Password(*in.Password) {
			return nil, invalid("Password must be at least 6 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		u.Hash = string(hash)
	}
	if in.Role != nil {
		role, ok := domain.ParseRole(*in.Role)
		if !ok {
			return nil, invalid("Invalid role")
		}
		u.Role = role
	}
	if in.Status != nil {
		st, ok := domain.ParseUserStatus(*in.Status)
		if !ok {
			return nil, invalid("Invalid status")
		}
		u.Status = string(st)
	}
	if in.Apartment != nil {
		if !in.Apartment.Complete() {
			return nil, invalid("Apartment details must include tower, floor and flat number")
		}
		b, _ := json.Marshal(in.Apartment)
		u.ApartmentJSON = string(b)
	}

	u.UpdatedAt = repos.Now()
	if err := s.Users.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete is admin-only at the route; admins cannot delete themselves.
func (s *UserService) Delete(caller *domain.User, id string) (*domain.User, error) {
	if caller.ID == id {
		return nil, ErrForbidden
	}
	u, err := s.Users.ByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.Users.Delete(id); err != nil {
		return nil, err
	}
	return u, nil
}
