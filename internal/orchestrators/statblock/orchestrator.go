// Package statblock implements the orchestrator that parses, stores,
// corrects and exports stat blocks
package statblock

//go:generate mockgen -destination=mock/mock_service.go -package=statblockmock github.com/KirkDiggler/statblock-api/internal/orchestrators/statblock Service

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/statblock-api/internal/clients/srd"
	"github.com/KirkDiggler/statblock-api/internal/errors"
	"github.com/KirkDiggler/statblock-api/internal/export/foundry"
	"github.com/KirkDiggler/statblock-api/internal/fixtures"
	"github.com/KirkDiggler/statblock-api/internal/pkg/idgen"
	parseresults "github.com/KirkDiggler/statblock-api/internal/repositories/parse_results"
	"github.com/KirkDiggler/statblock-api/internal/report"
	"github.com/KirkDiggler/statblock-api/internal/statblock"
)

const tracerName = "github.com/KirkDiggler/statblock-api/internal/orchestrators/statblock"

// Service defines the interface for stat block operations
type Service interface {
	// ParseStatBlock parses text and stores the result
	// Returns errors.InvalidArgument when the text is empty
	ParseStatBlock(ctx context.Context, input *ParseStatBlockInput) (*ParseStatBlockOutput, error)

	// GetParseResult fetches a stored parse
	// Returns errors.NotFound if the record doesn't exist or has expired
	GetParseResult(ctx context.Context, input *GetParseResultInput) (*GetParseResultOutput, error)

	// SetOverride corrects one field of a stored parse without recomputing
	// derived values
	SetOverride(ctx context.Context, input *SetOverrideInput) (*SetOverrideOutput, error)

	// ExportRecord renders a stored parse in one of ExportFormats
	ExportRecord(ctx context.Context, input *ExportRecordInput) (*ExportRecordOutput, error)

	// CrossCheck compares a stored parse against an SRD monster
	// Returns errors.FailedPrecondition when no SRD client is configured
	CrossCheck(ctx context.Context, input *CrossCheckInput) (*CrossCheckOutput, error)
}

// Config holds the dependencies for the stat block orchestrator
type Config struct {
	Repository  parseresults.Repository
	Parser      *statblock.Parser
	IDGenerator idgen.Generator
	// SRDClient is optional; CrossCheck fails without it
	SRDClient srd.Client
	Logger    *slog.Logger
	Tracer    trace.Tracer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Parser == nil {
		vb.RequiredField("Parser")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	repo   parseresults.Repository
	parser *statblock.Parser
	idGen  idgen.Generator
	srd    srd.Client
	logger *slog.Logger
	tracer trace.Tracer
}

// NewOrchestrator creates a new stat block orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
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
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	return &orchestrator{
		repo:   cfg.Repository,
		parser: cfg.Parser,
		idGen:  cfg.IDGenerator,
		srd:    cfg.SRDClient,
		logger: logger,
		tracer: tracer,
	}, nil
}

// endSpan records err on the span before ending it
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (o *orchestrator) ParseStatBlock(ctx context.Context, input *ParseStatBlockInput) (_ *ParseStatBlockOutput, err error) {
	ctx, span := o.tracer.Start(ctx, "statblock.ParseStatBlock")
	defer func() { endSpan(span, err) }()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	result, err := o.parser.Parse(input.Text)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse stat block")
	}

	record := &parseresults.Record{
		ID:     o.idGen.Generate(),
		Source: strings.TrimSpace(input.Source),
		Text:   input.Text,
		Result: result,
	}
	span.SetAttributes(
		attribute.String("record.id", record.ID),
		attribute.Int("parse.accuracy", result.Accuracy),
		attribute.Int("parse.warnings", len(result.Warnings)),
	)

	created, err := o.repo.Create(ctx, parseresults.CreateInput{Record: record})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store parse result")
	}

	o.logger.InfoContext(ctx, "stat block parsed",
		"id", record.ID,
		"name", result.Name,
		"accuracy", result.Accuracy,
		"fuzzy", result.Stats.Fuzzy,
		"warnings", len(result.Warnings))

	return &ParseStatBlockOutput{Record: created.Record}, nil
}

func (o *orchestrator) GetParseResult(ctx context.Context, input *GetParseResultInput) (_ *GetParseResultOutput, err error) {
	ctx, span := o.tracer.Start(ctx, "statblock.GetParseResult")
	defer func() { endSpan(span, err) }()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	record, err := o.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetParseResultOutput{Record: record}, nil
}

func (o *orchestrator) SetOverride(ctx context.Context, input *SetOverrideInput) (_ *SetOverrideOutput, err error) {
	ctx, span := o.tracer.Start(ctx, "statblock.SetOverride")
	defer func() { endSpan(span, err) }()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ID", input.ID, vb)
	errors.ValidateRequired("Field", input.Field, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	record, err := o.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	field := statblock.Field(strings.ToLower(strings.TrimSpace(input.Field)))
	entry, err := record.Result.SetOverride(field, input.Value)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to override %s", field)
	}
	span.SetAttributes(attribute.String("record.id", record.ID), attribute.String("override.field", string(field)))

	updated, err := o.repo.Update(ctx, parseresults.UpdateInput{Record: record})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store override")
	}

	o.logger.InfoContext(ctx, "field overridden",
		"id", record.ID,
		"field", field,
		"value", entry.RawValue)

	stored, ok := updated.Record.Result.Field(field)
	if !ok {
		stored = entry
	}
	return &SetOverrideOutput{Entry: stored, Record: updated.Record}, nil
}

func (o *orchestrator) ExportRecord(ctx context.Context, input *ExportRecordInput) (_ *ExportRecordOutput, err error) {
	ctx, span := o.tracer.Start(ctx, "statblock.ExportRecord")
	defer func() { endSpan(span, err) }()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	format := strings.ToLower(strings.TrimSpace(input.Format))
	if format == "" {
		format = FormatJSON
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("Format", format, ExportFormats, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	record, err := o.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("record.id", record.ID), attribute.String("export.format", format))

	out := &ExportRecordOutput{
		ContentType: "application/json",
		Filename:    srd.Slug(record.Result.Name) + ".json",
	}
	switch format {
	case FormatJSON:
		out.Data, err = json.MarshalIndent(record.Result, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal result")
		}
	case FormatFoundryV10:
		out.Data, err = foundry.Marshal(record.Result, foundry.V10)
	case FormatFoundryV12:
		out.Data, err = foundry.Marshal(record.Result, foundry.V12)
	case FormatXLSX:
		var buf bytes.Buffer
		err = report.Write(&buf, record.Result)
		out.Data = buf.Bytes()
		out.ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		out.Filename = srd.Slug(record.Result.Name) + ".xlsx"
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to export %s", format)
	}

	o.logger.DebugContext(ctx, "record exported", "id", record.ID, "format", format, "bytes", len(out.Data))
	return out, nil
}

func (o *orchestrator) CrossCheck(ctx context.Context, input *CrossCheckInput) (_ *CrossCheckOutput, err error) {
	ctx, span := o.tracer.Start(ctx, "statblock.CrossCheck")
	defer func() { endSpan(span, err) }()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.srd == nil {
		return nil, errors.FailedPrecondition("srd client is not configured")
	}

	record, err := o.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	key := input.MonsterKey
	if strings.TrimSpace(key) == "" {
		key = record.Result.Name
	}
	monster, err := o.srd.GetMonster(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get srd monster %s", key)
	}

	diffs, err := CompareMonster(monster, record.Result)
	if err != nil {
		return nil, err
	}
	summary := fixtures.Summarize(diffs)
	span.SetAttributes(
		attribute.String("record.id", record.ID),
		attribute.String("srd.key", monster.Key),
		attribute.Int("crosscheck.errors", summary.Errors),
		attribute.Int("crosscheck.warnings", summary.Warnings),
	)

	o.logger.InfoContext(ctx, "cross-check finished",
		"id", record.ID,
		"monster", monster.Key,
		"errors", summary.Errors,
		"warnings", summary.Warnings,
		"info", summary.Info)

	return &CrossCheckOutput{Monster: monster, Differences: diffs, Summary: summary}, nil
}

func (o *orchestrator) load(ctx context.Context, id string) (*parseresults.Record, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.InvalidArgument("id is required")
	}
	out, err := o.repo.Get(ctx, parseresults.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get parse result %s", id)
	}
	return out.Record, nil
}

// CompareMonster diffs a parse result against an SRD monster, treating the
// monster as the expected side. Name, AC, HP, hit dice, CR and the attack
// bonus of each action are compared.
func CompareMonster(m *srd.Monster, r *statblock.ParseResult) ([]fixtures.Difference, error) {
	if m == nil || r == nil {
		return nil, errors.InvalidArgument("monster and parse result are required")
	}
	diffs, err := fixtures.Compare(srdDocument(m), parsedDocument(r))
	if err != nil {
		return nil, errors.Wrap(err, "failed to compare with srd monster")
	}
	return diffs, nil
}

// srdDocument and parsedDocument build the same shape from both sides so
// the structural diff lines up
func srdDocument(m *srd.Monster) map[string]any {
	actions := make(map[string]any, len(m.Actions))
	for _, a := range m.Actions {
		actions[a.Name] = a.AttackBonus
	}
	return map[string]any{
		"name":            m.Name,
		"armor_class":     m.ArmorClass,
		"hit_points":      m.HitPoints,
		"hit_dice":        hitDice(m.HitDice),
		"challenge_value": m.ChallengeRating,
		"actions":         actions,
	}
}

func parsedDocument(r *statblock.ParseResult) map[string]any {
	actions := make(map[string]any, len(r.Actions))
	for _, a := range r.Actions {
		bonus := 0
		if a.Attack != nil {
			bonus = a.Attack.Bonus
		}
		actions[a.Name] = bonus
	}
	return map[string]any{
		"name":            r.Name,
		"armor_class":     r.ArmorClass,
		"hit_points":      r.HitPoints,
		"hit_dice":        hitDice(r.HitFormula),
		"challenge_value": r.ChallengeValue,
		"actions":         actions,
	}
}

// hitDice drops the modifier so "2d8+2" and "2d8" compare equal
func hitDice(formula string) string {
	f, err := statblock.ParseDiceFormula(formula)
	if err != nil {
		return strings.TrimSpace(formula)
	}
	f.Modifier = 0
	return f.String()
}
