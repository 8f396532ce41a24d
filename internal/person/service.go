package person

import (
	"context"
	"errors"

	"github.com/Kodanda10/Kharch-Baant-sub000/internal/auth"
)

// Common errors
var (
	ErrPersonNotFound    = errors.New("person not found")
	ErrEmailAlreadyInUse = errors.New("email already in use")
)

// Service handles person business logic
type Service struct {
	repo *Repository
	jwt  *auth.JWTManager
}

// NewService creates a new person service with dependencies injected
func NewService(repo *Repository, jwt *auth.JWTManager) *Service {
	return &Service{repo: repo, jwt: jwt}
}

// Register creates a new account and issues a session token
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*Person, string, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, "", err
	}

	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailAlreadyInUse
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	person, err := s.repo.Create(ctx, req.Name, req.Email, hash, req.AvatarURL)
	if err != nil {
		return nil, "", err
	}

	token, err := s.jwt.Generate(person.ID, person.Email)
	if err != nil {
		return nil, "", err
	}

	return person, token, nil
}

// Login authenticates by email and password and issues a session token
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*Person, string, error) {
	person, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if person == nil {
		return nil, "", auth.ErrInvalidCredentials
	}

	if err := auth.CheckPassword(person.PasswordHash, req.Password); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.Generate(person.ID, person.Email)
	if err != nil {
		return nil, "", err
	}

	return person, token, nil
}

// GetByID retrieves a person by their ID
func (s *Service) GetByID(ctx context.Context, id string) (*Person, error) {
	person, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}
	return person, nil
}

// List retrieves all people with pagination
func (s *Service) List(ctx context.Context, page, perPage int) ([]*Person, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.List(ctx, perPage, offset)
}

// Update modifies an existing person's profile
func (s *Service) Update(ctx context.Context, id string, req *UpdatePersonRequest) (*Person, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrPersonNotFound
	}

	return s.repo.Update(ctx, id, req)
}
