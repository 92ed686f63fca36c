package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/auth"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/models"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/repositories"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrEmailTaken         = errors.New("email already registered")
)

type UserService struct {
	users      *repositories.UserRepository
	jwtManager *auth.JWTManager
}

func NewUserService(users *repositories.UserRepository, jwtManager *auth.JWTManager) *UserService {
	return &UserService{users: users, jwtManager: jwtManager}
}

// Login authenticates by email and password and returns a signed token
// with the user. The same error covers an unknown email and a wrong
// password so the response does not leak which accounts exist.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := auth.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	token, err := s.jwtManager.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{Token: token, User: user}, nil
}

func (s *UserService) Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, errors.New("email and password are required")
	}
	if !models.ValidRole(req.Role) {
		return nil, fmt.Errorf("invalid role: %s", req.Role)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
		Phone:        req.Phone,
		Avatar:       req.Avatar,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id int) (*models.User, error) {
	return s.users.Get(ctx, id)
}

func (s *UserService) List(ctx context.Context, role string) ([]*models.User, error) {
	if role != "" && !models.ValidRole(role) {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	users, err := s.users.List(ctx, role)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*models.User{}
	}
	return users, nil
}

func (s *UserService) Update(ctx context.Context, id int, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != "" {
		user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Role != "" {
		if !models.ValidRole(req.Role) {
			return nil, fmt.Errorf("invalid role: %s", req.Role)
		}
		user.Role = req.Role
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ToggleActive flips the account between active and suspended and
// returns the updated user.
func (s *UserService) ToggleActive(ctx context.Context, id int) (*models.User, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.users.SetActive(ctx, id, !user.IsActive); err != nil {
		return nil, err
	}
	user.IsActive = !user.IsActive
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.users.Delete(ctx, id)
}

// EnsureDefaultOwner seeds the first owner account from OWNER_EMAIL and
// OWNER_PASSWORD when the users table is empty, so a fresh deployment
// can log in at all.
func (s *UserService) EnsureDefaultOwner(ctx context.Context) error {
	count, err := s.users.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("OWNER_EMAIL")
	password := os.Getenv("OWNER_PASSWORD")
	if email == "" || password == "" {
		log.Println("users table is empty and OWNER_EMAIL/OWNER_PASSWORD are unset, skipping owner bootstrap")
		return nil
	}

	owner, err := s.Create(ctx, &models.CreateUserRequest{
		Email:     email,
		Password:  password,
		FirstName: "System",
		LastName:  "Owner",
		Role:      models.RoleOwner,
	})
	if err != nil {
		return fmt.Errorf("failed to bootstrap owner account: %w", err)
	}
	log.Printf("Bootstrapped owner account %s (%s)", owner.FullName(), email)
	return nil
}
