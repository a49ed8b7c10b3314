package parseresults

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/statblock-api/internal/errors"
	"github.com/KirkDiggler/statblock-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/statblock-api/internal/redis"
)

const (
	keyPrefix = "statblock:result:"

	// KeyPattern matches every stored record key
	KeyPattern = keyPrefix + "*"

	// DefaultTTL is how long a record lives without being updated
	DefaultTTL = 7 * 24 * time.Hour

	errRecordNil   = "record cannot be nil"
	errIDEmpty     = "record ID cannot be empty"
	errResultNil   = "record result cannot be nil"
	errTextEmpty   = "record text cannot be empty"
	errMarshalFail = "failed to marshal record"
)

// Config holds the dependencies for the redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	TTL    time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.TTL < 0 {
		vb.InvalidField("TTL", "must not be negative")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis-backed parse result repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		ttl:    ttl,
	}, nil
}

func validateRecord(record *Record) error {
	switch {
	case record == nil:
		return errors.InvalidArgument(errRecordNil)
	case record.ID == "":
		return errors.InvalidArgument(errIDEmpty)
	case record.Text == "":
		return errors.InvalidArgument(errTextEmpty)
	case record.Result == nil:
		return errors.InvalidArgument(errResultNil)
	}
	return nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateRecord(input.Record); err != nil {
		return nil, err
	}

	record := *input.Record
	now := r.clock.Now().Unix()
	if record.CreatedAt == 0 {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	data, err := json.Marshal(&record)
	if err != nil {
		return nil, errors.Wrap(err, errMarshalFail)
	}

	ok, err := r.client.SetNX(ctx, keyPrefix+record.ID, data, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create record")
	}
	if !ok {
		return nil, errors.FailedPrecondition("record " + record.ID + " already exists").
			WithMeta("id", record.ID)
	}

	return &CreateOutput{Record: &record}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	result, err := r.client.Get(ctx, keyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("parse result %s not found", input.ID).WithMeta("id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get record")
	}

	var record Record
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal record")
	}

	return &GetOutput{Record: &record}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateRecord(input.Record); err != nil {
		return nil, err
	}

	key := keyPrefix + input.Record.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("parse result %s not found", input.Record.ID).WithMeta("id", input.Record.ID)
	}

	record := *input.Record
	record.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(&record)
	if err != nil {
		return nil, errors.Wrap(err, errMarshalFail)
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update record")
	}

	return &UpdateOutput{Record: &record}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	deleted, err := r.client.Del(ctx, keyPrefix+input.ID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete record")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("parse result %s not found", input.ID).WithMeta("id", input.ID)
	}

	return &DeleteOutput{}, nil
}
