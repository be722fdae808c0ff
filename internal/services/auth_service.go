package services

import (
	"encoding/json"
	"time"

	"github.com/claretax/apartmart/internal/domain"
	"github.com/claretax/apartmart/internal/repos"
	"github.com/claretax/apartmart/internal/validate"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is the fixed session lifetime; the cookie expires with the token.
const TokenTTL = 7 * 24 * time.Hour

const bcryptCost = 12

type AuthService struct {
	Users  *repos.UserRepo
	Secret []byte
}

func NewAuthService(users *repos.UserRepo, secret string) *AuthService {
	return &AuthService{Users: users, Secret: []byte(secret)}
}

// Login verifies credentials and returns the user plus a signed token.
// Unknown username and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (*domain.User, string, error) {
	u, err := s.Users.ByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	if u.Status != string(domain.UserActive) {
		return nil, "", ErrAccountInactive
	}
	tok, err := s.GenerateToken(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}

// GenerateToken signs a 7-day HS256 token carrying only the user id; role and
// status are re-resolved from storage on every request.
func (s *AuthService) GenerateToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// UserFromToken decodes a token and re-fetches the user record so role and
// status changes since issuance are honored.
func (s *AuthService) UserFromToken(token string) (*domain.User, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) { return s.Secret, nil },
		jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidCredentials
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidCredentials
	}
	u, err := s.Users.ByID(claims.Subject)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if u.Status != string(domain.UserActive) {
		return nil, ErrAccountInactive
	}
	return u, nil
}

type SignupInput struct {
	Username  string            `json:"username"`
	Email     string            `json:"email"`
	Password  string            `json:"password"`
	Apartment *domain.Apartment `json:"apartmentDetails"`
}

// Signup registers a resident account. All apartment sub-fields are required.
func (s *AuthService) Signup(in SignupInput) (*domain.User, error) {
	username, ok := validate.Username(in.Username)
	if !ok {
		return nil, invalid("Valid username is required")
	}
	email, ok := validate.Email(in.Email)
	if !ok {
		return nil, invalid("Valid email is required")
	}
	if !validate.Password(in.Password) {
		return nil, invalid("Password must be at least 6 characters")
	}
	if in.Apartment == nil || !in.Apartment.Complete() {
		return nil, invalid("All fields are required.")
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
	aj, _ := json.Marshal(in.Apartment)

	now := repos.Now()
	u := &domain.User{
		ID:            uuid.NewString(),
		Username:      username,
		Email:         email,
		Hash:          string(hash),
		Role:          domain.RoleResident,
		Status:        string(domain.UserActive),
		ApartmentJSON: string(aj),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Users.Insert(u); err != nil {
		return nil, err
	}
	return u, nil
}
