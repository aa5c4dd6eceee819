package service

import (
	"errors"
	"strconv"
	"strings"

	"go-sales-dashboard/internal/events"
	"go-sales-dashboard/internal/model"
	"go-sales-dashboard/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrEmailNotRegistered = errors.New("email not registered")
	ErrWrongPassword      = errors.New("wrong password")
)

// TokenIssuer signs session tokens for authenticated users
type TokenIssuer interface {
	GenerateToken(userID uint, email, name string) (string, error)
}

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
}

type LoginResponse struct {
	Message string             `json:"message"`
	User    model.UserResponse `json:"user"`
	Token   string             `json:"token"`
}

type authService struct {
	userRepo  repository.UserRepository
	tokens    TokenIssuer
	publisher events.Publisher
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenIssuer, publisher events.Publisher) AuthService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &authService{userRepo: userRepo, tokens: tokens, publisher: publisher}
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	// 1. Find user by email
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmailNotRegistered
		}
		return nil, err
	}

	// 2. Verify password against the bcrypt hash
	if !user.CheckPassword(password) {
		return nil, ErrWrongPassword
	}

	// 3. Issue a session token
	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	s.publisher.Publish(events.EventUserLoggedIn, strconv.FormatUint(uint64(user.ID), 10), user.ToResponse())

	return &LoginResponse{
		Message: "Login successful",
		User:    user.ToResponse(),
		Token:   token,
	}, nil
}
