package group

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository handles group data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new group repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new group into the database
func (r *Repository) Create(ctx context.Context, req *CreateGroupRequest) (*Group, error) {
	query := `
		INSERT INTO groups (id, name, currency_code, tag, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, currency_code, tag, start_date, end_date, archived, created_at
	`

	group := &Group{}
	err := r.db.QueryRowContext(ctx, query,
		uuid.New().String(),
		req.Name,
		req.CurrencyCode,
		req.Tag,
		req.StartDate,
		req.EndDate,
	).Scan(
		&group.ID,
		&group.Name,
		&group.CurrencyCode,
		&group.Tag,
		&group.StartDate,
		&group.EndDate,
		&group.Archived,
		&group.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return group, nil
}

// GetByID retrieves a group by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Group, error) {
	query := `
		SELECT id, name, currency_code, tag, start_date, end_date, archived, created_at
		FROM groups
		WHERE id = $1
	`

	group := &Group{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&group.ID,
		&group.Name,
		&group.CurrencyCode,
		&group.Tag,
		&group.StartDate,
		&group.EndDate,
		&group.Archived,
		&group.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return group, nil
}

// ListByMember retrieves all groups a person belongs to
func (r *Repository) ListByMember(ctx context.Context, personID string, includeArchived bool) ([]*Group, error) {
	query := `
		SELECT g.id, g.name, g.currency_code, g.tag, g.start_date, g.end_date, g.archived, g.created_at
		FROM groups g
		JOIN group_members m ON m.group_id = g.id
		WHERE m.person_id = $1 AND (g.archived = FALSE OR $2)
		ORDER BY g.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, personID, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*Group
	for rows.Next() {
		group := &Group{}
		if err := rows.Scan(
			&group.ID,
			&group.Name,
			&group.CurrencyCode,
			&group.Tag,
			&group.StartDate,
			&group.EndDate,
			&group.Archived,
			&group.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	return groups, nil
}

// Update modifies a group's fields
func (r *Repository) Update(ctx context.Context, id string, req *UpdateGroupRequest) (*Group, error) {
	query := `
		UPDATE groups
		SET name = COALESCE($2, name),
		    tag = COALESCE($3, tag),
		    start_date = COALESCE($4, start_date),
		    end_date = COALESCE($5, end_date),
		    archived = COALESCE($6, archived)
		WHERE id = $1
		RETURNING id, name, currency_code, tag, start_date, end_date, archived, created_at
	`

	group := &Group{}
	err := r.db.QueryRowContext(ctx, query, id, req.Name, req.Tag, req.StartDate, req.EndDate, req.Archived).Scan(
		&group.ID,
		&group.Name,
		&group.CurrencyCode,
		&group.Tag,
		&group.StartDate,
		&group.EndDate,
		&group.Archived,
		&group.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	return group, nil
}

// AddMember adds a person to a group
func (r *Repository) AddMember(ctx context.Context, groupID, personID string) (*Member, error) {
	query := `
		INSERT INTO group_members (group_id, person_id)
		VALUES ($1, $2)
		RETURNING group_id, person_id, added_at
	`

	member := &Member{}
	err := r.db.QueryRowContext(ctx, query, groupID, personID).Scan(
		&member.GroupID,
		&member.PersonID,
		&member.AddedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return member, nil
}

// RemoveMember removes a person from a group. Transactions referencing the
// person are untouched.
func (r *Repository) RemoveMember(ctx context.Context, groupID, personID string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM group_members WHERE group_id = $1 AND person_id = $2`,
		groupID, personID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to remove member: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check removed member: %w", err)
	}
	return affected > 0, nil
}

// ListMembers retrieves the members of a group with their display data
func (r *Repository) ListMembers(ctx context.Context, groupID string) ([]*Member, error) {
	query := `
		SELECT m.group_id, m.person_id, m.added_at, p.name, p.avatar_url
		FROM group_members m
		JOIN people p ON p.id = m.person_id
		WHERE m.group_id = $1
		ORDER BY m.added_at
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*Member
	for rows.Next() {
		member := &Member{}
		if err := rows.Scan(
			&member.GroupID,
			&member.PersonID,
			&member.AddedAt,
			&member.Name,
			&member.AvatarURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}

// IsMember reports whether a person currently belongs to a group
func (r *Repository) IsMember(ctx context.Context, groupID, personID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM group_members WHERE group_id = $1 AND person_id = $2)`,
		groupID, personID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return exists, nil
}
