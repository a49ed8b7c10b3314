package statblock

import (
	"log/slog"

	"github.com/KirkDiggler/statblock-api/internal/errors"
)

const (
	// DefaultFuzzyWindow is how many leading lines the fuzzy fallback scans
	DefaultFuzzyWindow = 30
	// DefaultFuzzyThreshold is the largest edit distance a fuzzy hit may have
	DefaultFuzzyThreshold = 2
)

// Config holds the tunables of a Parser
type Config struct {
	FuzzyWindow    int
	FuzzyThreshold int
	Logger         *slog.Logger
}

// DefaultConfig returns the standard parser settings
func DefaultConfig() *Config {
	return &Config{
		FuzzyWindow:    DefaultFuzzyWindow,
		FuzzyThreshold: DefaultFuzzyThreshold,
	}
}

// Validate ensures the settings are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("FuzzyWindow", c.FuzzyWindow, 1, 200, vb)
	errors.ValidateRange("FuzzyThreshold", c.FuzzyThreshold, 0, 5, vb)

	return vb.Build()
}

// Parser turns stat block text into a ParseResult. A Parser holds no per-parse
// state and is safe for concurrent use.
type Parser struct {
	cfg    Config
	logger *slog.Logger
}

// NewParser creates a parser with the provided settings
func NewParser(cfg *Config) (*Parser, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Parser{cfg: *cfg, logger: logger}, nil
}

var defaultParser = &Parser{cfg: *DefaultConfig(), logger: slog.Default()}

// Parse runs the default parser over text
func Parse(text string) (*ParseResult, error) {
	return defaultParser.Parse(text)
}

// Parse extracts every ledger field from text. Only blank input fails; every
// other problem is reported as a warning on the result.
func (p *Parser) Parse(text string) (*ParseResult, error) {
	doc := newDocument(text)
	if doc.empty() {
		return nil, ErrEmptyInput
	}

	e := &extraction{
		doc:      doc,
		cfg:      p.cfg,
		logger:   p.logger,
		warnings: []Warning{},
	}

	r := &ParseResult{}
	e.name(r)
	e.size(r)
	e.creatureType(r)
	e.alignment(r)
	e.armorClass(r)
	e.hitPoints(r)
	e.speed(r)
	e.abilities(r)
	e.challengeRating(r)
	e.saves(r)
	e.skills(r)
	e.senses(r)
	e.languages(r)
	e.initiative(r)
	e.actions(r)
	e.defenses(r)

	r.Ledger = e.ledger
	r.Stats = e.stats
	r.Accuracy = e.stats.Accuracy()
	r.Warnings = e.warnings

	p.logger.Debug("stat block parsed",
		"name", r.Name,
		"accuracy", r.Accuracy,
		"exact", r.Stats.Exact,
		"fuzzy", r.Stats.Fuzzy,
		"warnings", len(r.Warnings))

	return r, nil
}
