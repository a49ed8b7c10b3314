// Package parseresults stores parse results so they can be fetched,
// corrected and exported after the original request
package parseresults

//go:generate mockgen -destination=mock/mock_repository.go -package=parseresultsmock github.com/KirkDiggler/statblock-api/internal/repositories/parse_results Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/statblock-api/internal/statblock"
)

// EntityType is the rpg-toolkit entity type of a stored record
const EntityType = "parse_result"

// Record is a stored parse: the submitted text and the result it produced,
// including any overrides applied since
type Record struct {
	ID        string                 `json:"id"`
	Source    string                 `json:"source,omitempty"`
	Text      string                 `json:"text"`
	Result    *statblock.ParseResult `json:"result"`
	CreatedAt int64                  `json:"created_at"`
	UpdatedAt int64                  `json:"updated_at"`
}

// GetID returns the record ID
func (r *Record) GetID() string {
	return r.ID
}

// GetType returns the entity type for rpg-toolkit
func (r *Record) GetType() string {
	return EntityType
}

var _ core.Entity = (*Record)(nil)

// Repository defines the interface for parse result persistence
type Repository interface {
	// Create stores a new record
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.FailedPrecondition if the ID is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a record by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the record doesn't exist or has expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing record and refreshes its expiry
	// Returns errors.NotFound if the record doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a record
	// Returns errors.NotFound if the record doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a record
type CreateInput struct {
	Record *Record
}

// CreateOutput defines the output for creating a record
type CreateOutput struct {
	Record *Record
}

// GetInput defines the input for getting a record
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a record
type GetOutput struct {
	Record *Record
}

// UpdateInput defines the input for updating a record
type UpdateInput struct {
	Record *Record
}

// UpdateOutput defines the output for updating a record
type UpdateOutput struct {
	Record *Record
}

// DeleteInput defines the input for deleting a record
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a record
type DeleteOutput struct{}
