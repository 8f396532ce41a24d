package group

// CreateGroupRequest represents the request to create a new group
type CreateGroupRequest struct {
	Name         string   `json:"name" validate:"required,min=1,max=100"`
	CurrencyCode string   `json:"currencyCode" validate:"required,len=3"`
	Tag          *string  `json:"tag,omitempty"`
	StartDate    *string  `json:"startDate,omitempty"`
	EndDate      *string  `json:"endDate,omitempty"`
	MemberIDs    []string `json:"memberIds,omitempty"`
}

// UpdateGroupRequest represents the request to update a group
type UpdateGroupRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Tag       *string `json:"tag,omitempty"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	Archived  *bool   `json:"archived,omitempty"`
}

// AddMemberRequest represents the request to add a member to a group
type AddMemberRequest struct {
	PersonID string `json:"personId" validate:"required"`
}

// GroupResponse represents the response for a group
type GroupResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	CurrencyCode string            `json:"currencyCode"`
	Tag          *string           `json:"tag,omitempty"`
	StartDate    *string           `json:"startDate,omitempty"`
	EndDate      *string           `json:"endDate,omitempty"`
	Archived     bool              `json:"archived"`
	CreatedAt    string            `json:"createdAt"`
	Members      []*MemberResponse `json:"members,omitempty"`
}

// MemberResponse represents a member in a group response
type MemberResponse struct {
	PersonID  string  `json:"personId"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	AddedAt   string  `json:"addedAt"`
}

// ToResponse converts a Group model to a GroupResponse DTO
func (g *Group) ToResponse() *GroupResponse {
	return &GroupResponse{
		ID:           g.ID,
		Name:         g.Name,
		CurrencyCode: g.CurrencyCode,
		Tag:          g.Tag,
		StartDate:    g.StartDate,
		EndDate:      g.EndDate,
		Archived:     g.Archived,
		CreatedAt:    g.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToResponse converts a Member model to a MemberResponse DTO
func (m *Member) ToResponse() *MemberResponse {
	return &MemberResponse{
		PersonID:  m.PersonID,
		Name:      m.Name,
		AvatarURL: m.AvatarURL,
		AddedAt:   m.AddedAt.Format("2006-01-02T15:04:05Z"),
	}
}
