package person

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository handles person data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new person repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new person into the database
func (r *Repository) Create(ctx context.Context, name, email, passwordHash string, avatarURL *string) (*Person, error) {
	query := `
		INSERT INTO people (id, name, email, password_hash, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, password_hash, avatar_url, created_at
	`

	person := &Person{}
	err := r.db.QueryRowContext(ctx, query, uuid.New().String(), name, email, passwordHash, avatarURL).Scan(
		&person.ID,
		&person.Name,
		&person.Email,
		&person.PasswordHash,
		&person.AvatarURL,
		&person.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	return person, nil
}

// GetByID retrieves a person by their ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Person, error) {
	query := `
		SELECT id, name, email, password_hash, avatar_url, created_at
		FROM people
		WHERE id = $1
	`

	person := &Person{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&person.ID,
		&person.Name,
		&person.Email,
		&person.PasswordHash,
		&person.AvatarURL,
		&person.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	return person, nil
}

// GetByEmail retrieves a person by their email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*Person, error) {
	query := `
		SELECT id, name, email, password_hash, avatar_url, created_at
		FROM people
		WHERE email = $1
	`

	person := &Person{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&person.ID,
		&person.Name,
		&person.Email,
		&person.PasswordHash,
		&person.AvatarURL,
		&person.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get person by email: %w", err)
	}

	return person, nil
}

// List retrieves all people with pagination
func (r *Repository) List(ctx context.Context, limit, offset int) ([]*Person, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM people`
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count people: %w", err)
	}

	query := `
		SELECT id, name, email, password_hash, avatar_url, created_at
		FROM people
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	var people []*Person
	for rows.Next() {
		person := &Person{}
		if err := rows.Scan(
			&person.ID,
			&person.Name,
			&person.Email,
			&person.PasswordHash,
			&person.AvatarURL,
			&person.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, person)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate people: %w", err)
	}

	return people, total, nil
}

// Update modifies a person's profile fields
func (r *Repository) Update(ctx context.Context, id string, req *UpdatePersonRequest) (*Person, error) {
	query := `
		UPDATE people
		SET name = COALESCE($2, name),
		    avatar_url = COALESCE($3, avatar_url)
		WHERE id = $1
		RETURNING id, name, email, password_hash, avatar_url, created_at
	`

	person := &Person{}
	err := r.db.QueryRowContext(ctx, query, id, req.Name, req.AvatarURL).Scan(
		&person.ID,
		&person.Name,
		&person.Email,
		&person.PasswordHash,
		&person.AvatarURL,
		&person.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update person: %w", err)
	}

	return person, nil
}
