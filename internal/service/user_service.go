package service

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"go-sales-dashboard/internal/events"
	"go-sales-dashboard/internal/model"
	"go-sales-dashboard/internal/repository"
	"go-sales-dashboard/pkg/validator"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already exists")
)

// ValidationError carries a client-facing message for malformed input
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

type UserService interface {
	CreateUser(req *CreateUserRequest) (*model.User, error)
	GetAllUsers() ([]model.User, error)
	GetUserByID(id uint) (*model.User, error)
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"omitempty,min=6,max=72"`
}

type userService struct {
	userRepo  repository.UserRepository
	publisher events.Publisher
}

func NewUserService(userRepo repository.UserRepository, publisher events.Publisher) UserService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &userService{userRepo: userRepo, publisher: publisher}
}

func (s *userService) CreateUser(req *CreateUserRequest) (*model.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	// 1. Validate request
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Message: validator.Message(errs)}
	}

	// 2. Check if email already exists
	existing, err := s.userRepo.FindByEmail(req.Email)
	if err == nil && existing != nil {
		return nil, ErrEmailExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 3. Build the record
	user := &model.User{
		Name:  req.Name,
		Email: req.Email,
	}
	if req.Password != "" {
		if err := user.SetPassword(req.Password); err != nil {
			return nil, errors.New("failed to hash password")
		}
	}

	// 4. Save to database; the unique index catches concurrent duplicates
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		log.Printf("users: create %s: %v", req.Email, err)
		return nil, err
	}

	s.publisher.Publish(events.EventUserCreated, strconv.FormatUint(uint64(user.ID), 10), user.ToResponse())
	return user, nil
}

func (s *userService) GetAllUsers() ([]model.User, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

func (s *userService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
