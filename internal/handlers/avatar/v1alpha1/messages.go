package v1alpha1

import (
	"github.com/KirkDiggler/oripheon-api/internal/entities"
)

// GenerateRequest is the body of Generate: the generation params themselves
type GenerateRequest = entities.Params

// AvatarResponse wraps a single avatar
type AvatarResponse struct {
	Avatar *entities.Avatar `json:"avatar"`
}

// RerollRequest is the body of Reroll
type RerollRequest struct {
	ID     string          `json:"id"`
	Params entities.Params `json:"params"`
	Locks  []string        `json:"locks,omitempty"`
}

// IDRequest is the body of GetAvatar and DeleteAvatar
type IDRequest struct {
	ID string `json:"id"`
}

// ListRequest is the body of ListAvatars
type ListRequest struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

// ListResponse is one page of avatars
type ListResponse struct {
	Avatars []*entities.Avatar `json:"avatars"`
	Limit   int                `json:"limit"`
	Offset  int                `json:"offset"`
	Total   int                `json:"total"`
}

// NameCandidatesRequest is the body of NameCandidates
type NameCandidatesRequest struct {
	Seed          *int64            `json:"seed,omitempty"`
	Archetype     string            `json:"archetype"`
	Traits        []string          `json:"traits,omitempty"`
	Style         string            `json:"style,omitempty"`
	NameMode      entities.NameMode `json:"nameMode,omitempty"`
	AllowTitles   bool              `json:"allowTitles,omitempty"`
	AllowEpithets bool              `json:"allowEpithets,omitempty"`
	Candidates    int               `json:"candidates,omitempty"`
	Limit         int               `json:"limit,omitempty"`
}

// NameCandidatesResponse lists names best first
type NameCandidatesResponse struct {
	Names []entities.PrimaryName `json:"names"`
	Seed  int64                  `json:"seed"`
}

// ExportRequest is the body of ExportAvatar
type ExportRequest struct {
	ID     string `json:"id"`
	Format string `json:"format"`
}

// ExportResponse carries the format-specific payload
type ExportResponse struct {
	Format  string `json:"format"`
	Payload any    `json:"payload"`
}
