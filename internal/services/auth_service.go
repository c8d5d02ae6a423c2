package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"toursapp/internal/config"
	"toursapp/internal/domain"
	"toursapp/internal/domain/models"
	"toursapp/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/uptrace/bun"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for both unknown accounts and wrong
// passwords, so responses do not leak which one it was.
var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	db       *bun.DB
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(db *bun.DB, cfg config.AuthConfig) *AuthService {
	return &AuthService{
		db:       db,
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: cfg.TokenLifetime,
	}
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a customer account. Admin accounts are provisioned out of
// band.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, domain.ValidationError{Field: "email", Msg: "email is required"}
	}
	if len(in.Password) < 8 {
		return nil, domain.ValidationError{Field: "password", Msg: "password must be at least 8 characters"}
	}

	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Close()

	existing, err := uow.Users.GetAll(ctx, repositories.Where("u.email = ?", email))
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, domain.ValidationError{Field: "email", Msg: "email is already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleCustomer,
		Status:       "active",
		IsActive:     true,
	}
	if err := uow.Users.Add(user); err != nil {
		return nil, err
	}
	if err := uow.Complete(ctx); err != nil {
		// A registration that raced past the read check above hits the
		// unique index instead; report it the same way.
		if isUniqueViolation(err) {
			return nil, domain.ValidationError{Field: "email", Msg: "email is already registered", Err: err}
		}
		return nil, err
	}
	return user, nil
}

// isUniqueViolation recognizes the drivers' unique-index errors: mysql
// "Duplicate entry", postgres "duplicate key value", sqlite "UNIQUE
// constraint failed".
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate")
}

// Login verifies the credentials and issues a signed JWT carrying the user's
// id, e-mail and role claim.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return "", nil, err
	}
	defer uow.Close()

	users, err := uow.Users.GetAll(ctx, repositories.Where("u.email = ?", email))
	if err != nil {
		return "", nil, err
	}
	if len(users) == 0 {
		return "", nil, ErrInvalidCredentials
	}
	user := users[0]

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, user, nil
}
