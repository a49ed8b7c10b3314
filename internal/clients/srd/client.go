// Package srd is the location for the SRD reference client used to
// cross-check parsed stat blocks against published monsters
package srd

//go:generate mockgen -destination=mock/mock_client.go -package=srdmock github.com/KirkDiggler/statblock-api/internal/clients/srd Client

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/statblock-api/internal/errors"
)

// Defaults
const (
	DefaultBaseURL     = "https://www.dnd5eapi.co/api/2014/"
	DefaultHTTPTimeout = 30 * time.Second
	DefaultCacheTTL    = 24 * time.Hour
)

var (
	slugPattern  = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphens  = regexp.MustCompile(`-+`)
	notFoundText = regexp.MustCompile(`(?i)\b404\b|not found`)
)

// Slug creates the API key for a monster name, e.g. "Adult Red Dragon" ->
// "adult-red-dragon"
func Slug(s string) string {
	slug := strings.ToLower(strings.TrimSpace(s))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	return slugHyphens.ReplaceAllString(slug, "-")
}

// Client defines the interface for SRD reference lookups
type Client interface {
	// GetMonster fetches a monster by key or display name
	GetMonster(ctx context.Context, key string) (*Monster, error)
}

// Monster is the subset of an SRD monster used for cross-checks
type Monster struct {
	Key             string          `json:"key"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	ArmorClass      int             `json:"armor_class"`
	HitPoints       int             `json:"hit_points"`
	HitDice         string          `json:"hit_dice"`
	ChallengeRating float64         `json:"challenge_rating"`
	Actions         []MonsterAction `json:"actions,omitempty"`
}

// MonsterAction is an SRD monster action
type MonsterAction struct {
	Name        string   `json:"name"`
	AttackBonus int      `json:"attack_bonus"`
	DamageDice  []string `json:"damage_dice,omitempty"`
}

// monsterAPI is the part of the dnd5e client this package calls
type monsterAPI interface {
	GetMonster(key string) (*entities.Monster, error)
}

type client struct {
	dnd5eClient monsterAPI
}

// Config contains configuration options for the SRD client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}

	vb := errors.NewValidationBuilder()
	if cfg.HTTPTimeout < 0 {
		vb.InvalidField("HTTPTimeout", "must not be negative")
	}
	if cfg.CacheTTL < 0 {
		vb.InvalidField("CacheTTL", "must not be negative")
	}
	return vb.Build()
}

// New creates a new SRD client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	return &client{
		dnd5eClient: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL),
	}, nil
}

func (c *client) GetMonster(ctx context.Context, key string) (*Monster, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "get monster")
	}

	apiKey := Slug(key)
	if apiKey == "" {
		return nil, errors.InvalidArgument("monster key is required")
	}

	monster, err := c.dnd5eClient.GetMonster(apiKey)
	if err != nil {
		if notFoundText.MatchString(err.Error()) {
			return nil, errors.NotFoundf("monster %s not found", apiKey).WithMeta("key", apiKey)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get monster "+apiKey)
	}
	if monster == nil {
		return nil, errors.NotFoundf("monster %s not found", apiKey).WithMeta("key", apiKey)
	}

	return convertMonster(monster), nil
}

func convertMonster(input *entities.Monster) *Monster {
	out := &Monster{
		Key:             input.Key,
		Name:            input.Name,
		Type:            input.Type,
		ArmorClass:      int(input.ArmorClass),
		HitPoints:       int(input.HitPoints),
		HitDice:         input.HitDice,
		ChallengeRating: float64(input.ChallengeRating),
		Actions:         make([]MonsterAction, 0, len(input.MonsterActions)),
	}
	for _, action := range input.MonsterActions {
		if action == nil {
			continue
		}
		converted := MonsterAction{
			Name:        action.Name,
			AttackBonus: int(action.AttackBonus),
		}
		for _, dmg := range action.Damage {
			if dmg != nil && dmg.DamageDice != "" {
				converted.DamageDice = append(converted.DamageDice, dmg.DamageDice)
			}
		}
		out.Actions = append(out.Actions, converted)
	}
	return out
}
