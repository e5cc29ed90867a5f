// luvisa/controllers/auth.go
package controllers

import (
	"context"
	"errors"
	"regexp"
	"time"

	"luvisa/luvisa/config"
	"luvisa/luvisa/sources/psql/dao"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidEmail    = errors.New("please enter a valid email address")
	ErrEmailRegistered = errors.New("this email is already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

type AuthController struct {
	userDAO *dao.UserDAO
	cfg     config.Config
}

func NewAuthController(userDAO *dao.UserDAO, cfg config.Config) *AuthController {
	return &AuthController{
		userDAO: userDAO,
		cfg:     cfg,
	}
}

func (c *AuthController) Signup(ctx context.Context, email, password string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	existing, err := c.userDAO.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailRegistered
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = c.userDAO.CreateUser(ctx, email, string(hash))
	return err
}

func (c *AuthController) Login(ctx context.Context, email, password string) (string, error) {
	user, err := c.userDAO.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidPassword
	}
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.cfg.JWTSecret))
}

// CheckEmail reports whether a stored account exists for the email. Used by
// the frontend's remembered-session auto-login.
func (c *AuthController) CheckEmail(ctx context.Context, email string) (bool, error) {
	user, err := c.userDAO.GetUserByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}
