package group

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Kodanda10/Kharch-Baant-sub000/internal/notification"
)

// Common errors
var (
	ErrGroupNotFound       = errors.New("group not found")
	ErrMemberNotFound      = errors.New("member not found")
	ErrMemberAlreadyExists = errors.New("person is already a member of this group")
	ErrNotMember           = errors.New("not a member of this group")
	ErrGroupArchived       = errors.New("group is archived")
)

// Service handles group business logic
type Service struct {
	repo     *Repository
	notifier *notification.Service
}

// NewService creates a new group service. notifier may be nil to disable
// in-app notifications.
func NewService(repo *Repository, notifier *notification.Service) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Create creates a new group with the creator as its first member,
// followed by any members named in the request.
func (s *Service) Create(ctx context.Context, creatorID string, req *CreateGroupRequest) (*Group, error) {
	group, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.AddMember(ctx, group.ID, creatorID); err != nil {
		return nil, err
	}
	for _, personID := range req.MemberIDs {
		if personID == creatorID {
			continue
		}
		if _, err := s.repo.AddMember(ctx, group.ID, personID); err != nil {
			return nil, err
		}
		s.notifyAdded(ctx, personID, group)
	}

	return group, nil
}

// notifyAdded tells a person they were added to a group. Failures are
// logged, never surfaced: membership is already recorded.
func (s *Service) notifyAdded(ctx context.Context, personID string, group *Group) {
	if s.notifier == nil {
		return
	}
	if _, err := s.notifier.NotifyAddedToGroup(ctx, personID, group.Name, group.ID); err != nil {
		slog.Warn("group membership notification failed", "group_id", group.ID, "person_id", personID, "error", err)
	}
}

// GetByID retrieves a group by its ID
func (s *Service) GetByID(ctx context.Context, id string) (*Group, error) {
	group, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return group, nil
}

// ListForPerson retrieves the groups a person belongs to
func (s *Service) ListForPerson(ctx context.Context, personID string, includeArchived bool) ([]*Group, error) {
	return s.repo.ListByMember(ctx, personID, includeArchived)
}

// Update modifies an existing group. Only members may update a group.
func (s *Service) Update(ctx context.Context, id, personID string, req *UpdateGroupRequest) (*Group, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrGroupNotFound
	}

	isMember, err := s.repo.IsMember(ctx, id, personID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, ErrNotMember
	}

	return s.repo.Update(ctx, id, req)
}

// AddMember adds a person to a group
func (s *Service) AddMember(ctx context.Context, groupID, personID string) (*Member, error) {
	group, err := s.repo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	if group.Archived {
		return nil, ErrGroupArchived
	}

	exists, err := s.repo.IsMember(ctx, groupID, personID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrMemberAlreadyExists
	}

	member, err := s.repo.AddMember(ctx, groupID, personID)
	if err != nil {
		return nil, err
	}
	s.notifyAdded(ctx, personID, group)
	return member, nil
}

// RemoveMember removes a person from a group without touching their
// transaction history.
func (s *Service) RemoveMember(ctx context.Context, groupID, personID string) error {
	group, err := s.repo.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group == nil {
		return ErrGroupNotFound
	}

	removed, err := s.repo.RemoveMember(ctx, groupID, personID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrMemberNotFound
	}
	return nil
}

// ListMembers retrieves the members of a group
func (s *Service) ListMembers(ctx context.Context, groupID string) ([]*Member, error) {
	group, err := s.repo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	return s.repo.ListMembers(ctx, groupID)
}

// MemberIDSet returns the current member ids of a group for membership
// checks in other services.
func (s *Service) MemberIDSet(ctx context.Context, groupID string) (map[string]bool, error) {
	members, err := s.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	set := make(map[string]bool, len(members))
	for _, m := range members {
		set[m.PersonID] = true
	}
	return set, nil
}
