package parseresults

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/KirkDiggler/statblock-api/internal/errors"
	"github.com/KirkDiggler/statblock-api/internal/pkg/clock"
)

// InMemoryRepository implements Repository in process memory. Records are
// stored serialized so callers never share state with the store. Nothing
// expires.
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string][]byte
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates an empty in-memory repository. A nil clock uses the
// real clock.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string][]byte),
	}
}

// Create stores a new record
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateRecord(input.Record); err != nil {
		return nil, err
	}

	record := *input.Record
	now := r.clock.Now().Unix()
	if record.CreatedAt == 0 {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[record.ID]; exists {
		return nil, errors.FailedPrecondition("record " + record.ID + " already exists").
			WithMeta("id", record.ID)
	}
	if err := r.put(&record); err != nil {
		return nil, err
	}

	return &CreateOutput{Record: &record}, nil
}

// Get retrieves a record by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.RLock()
	data, exists := r.store[input.ID]
	r.mu.RUnlock()
	if !exists {
		return nil, errors.NotFoundf("parse result %s not found", input.ID).WithMeta("id", input.ID)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal record")
	}
	return &GetOutput{Record: &record}, nil
}

// Update replaces an existing record
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateRecord(input.Record); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Record.ID]; !exists {
		return nil, errors.NotFoundf("parse result %s not found", input.Record.ID).WithMeta("id", input.Record.ID)
	}

	record := *input.Record
	record.UpdatedAt = r.clock.Now().Unix()
	if err := r.put(&record); err != nil {
		return nil, err
	}

	return &UpdateOutput{Record: &record}, nil
}

// Delete removes a record
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("parse result %s not found", input.ID).WithMeta("id", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

// put must be called with the write lock held
func (r *InMemoryRepository) put(record *Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, errMarshalFail)
	}
	r.store[record.ID] = data
	return nil
}
