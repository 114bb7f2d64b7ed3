package avatar

import (
	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/exporters"
)

// GenerateInput defines the request for generating and storing an avatar
type GenerateInput struct {
	Params entities.Params
}

// GenerateOutput defines the response for generating an avatar
type GenerateOutput struct {
	Avatar *entities.Avatar
}

// RerollInput defines the request for regenerating a stored avatar.
// Locks are dotted field paths such as "being.order".
type RerollInput struct {
	ID     string
	Params entities.Params
	Locks  []string
}

// RerollOutput defines the response for rerolling an avatar
type RerollOutput struct {
	Avatar *entities.Avatar
}

// GetInput defines the request for getting an avatar
type GetInput struct {
	ID string
}

// GetOutput defines the response for getting an avatar
type GetOutput struct {
	Avatar *entities.Avatar
}

// DeleteInput defines the request for deleting an avatar
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the response for deleting an avatar
type DeleteOutput struct{}

// ListInput defines a page request. Zero Limit means the configured default.
type ListInput struct {
	Limit  int
	Offset int
}

// ListOutput defines one page of avatars, newest first
type ListOutput struct {
	Avatars []*entities.Avatar
	Limit   int
	Offset  int
	Total   int
}

// NameCandidatesInput defines a standalone name forge request
type NameCandidatesInput struct {
	Seed          *int64
	Archetype     string
	Traits        []string
	Style         string
	NameMode      entities.NameMode
	AllowTitles   bool
	AllowEpithets bool
	Candidates    int
	Limit         int
}

// NameCandidatesOutput defines ranked names, best first
type NameCandidatesOutput struct {
	Names []entities.PrimaryName
	Seed  int64
}

// ExportInput defines the request for exporting an avatar
type ExportInput struct {
	ID     string
	Format string
}

// ExportOutput carries the format-specific payload
type ExportOutput struct {
	Format  exporters.Format
	Payload any
}

// CatalogInput defines the request for the registries
type CatalogInput struct{}

// CatalogOutput lists every closed registry a client can choose from
type CatalogOutput struct {
	Archetypes    []ArchetypeEntry `json:"archetypes"`
	Traits        []CatalogEntry   `json:"traits"`
	Styles        []CatalogEntry   `json:"styles"`
	Cultures      []CatalogEntry   `json:"cultures"`
	Orders        []OrderEntry     `json:"orders"`
	Tarot         []string         `json:"tarot"`
	Genders       []string         `json:"genders"`
	NameModes     []string         `json:"nameModes"`
	LockPaths     []string         `json:"lockPaths"`
	ExportFormats []string         `json:"exportFormats"`
}

// CatalogEntry is an id and its display label
type CatalogEntry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ArchetypeEntry is a name archetype with its genre group
type ArchetypeEntry struct {
	ID              string   `json:"id"`
	Label           string   `json:"label"`
	Group           string   `json:"group"`
	SuggestedTraits []string `json:"suggestedTraits"`
}

// OrderEntry is an order with its office pool
type OrderEntry struct {
	ID      string   `json:"id"`
	Offices []string `json:"offices"`
}
