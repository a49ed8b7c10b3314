// Package v1alpha1 handles the stat block grpc service interface
package v1alpha1

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/statblock-api/internal/errors"
	"github.com/KirkDiggler/statblock-api/internal/orchestrators/statblock"
)

// Data encodings used by ExportRecord responses
const (
	EncodingUTF8   = "utf-8"
	EncodingBase64 = "base64"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	StatBlockService statblock.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.StatBlockService == nil {
		return errors.InvalidArgument("stat block service is required")
	}
	return nil
}

// Handler implements the stat block gRPC service
type Handler struct {
	UnimplementedStatBlockServiceServer
	statBlockService statblock.Service
}

var _ StatBlockServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		statBlockService: cfg.StatBlockService,
	}, nil
}

// ParseStatBlock parses and stores a stat block.
// Request: {text, source}. Response: {record}.
func (h *Handler) ParseStatBlock(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.statBlockService.ParseStatBlock(ctx, &statblock.ParseStatBlockInput{
		Text:   stringField(req, "text"),
		Source: stringField(req, "source"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"record": output.Record})
}

// GetParseResult fetches a stored parse by id. Response: {record}.
func (h *Handler) GetParseResult(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if req.GetValue() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}

	output, err := h.statBlockService.GetParseResult(ctx, &statblock.GetParseResultInput{ID: req.GetValue()})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"record": output.Record})
}

// SetOverride corrects one field of a stored parse.
// Request: {id, field, value}. Response: {entry, record}.
func (h *Handler) SetOverride(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.statBlockService.SetOverride(ctx, &statblock.SetOverrideInput{
		ID:    stringField(req, "id"),
		Field: stringField(req, "field"),
		Value: stringField(req, "value"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"entry": output.Entry, "record": output.Record})
}

// ExportRecord renders a stored parse.
// Request: {id, format}. Response: {data, encoding, content_type, filename}.
// Formats other than JSON are base64 encoded.
func (h *Handler) ExportRecord(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.statBlockService.ExportRecord(ctx, &statblock.ExportRecordInput{
		ID:     stringField(req, "id"),
		Format: stringField(req, "format"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	data, encoding := string(output.Data), EncodingUTF8
	if !strings.HasPrefix(output.ContentType, "application/json") {
		data, encoding = base64.StdEncoding.EncodeToString(output.Data), EncodingBase64
	}

	return respond(map[string]any{
		"data":         data,
		"encoding":     encoding,
		"content_type": output.ContentType,
		"filename":     output.Filename,
	})
}

// CrossCheck compares a stored parse with an SRD monster.
// Request: {id, monster_key}. Response: {monster, differences, summary}.
func (h *Handler) CrossCheck(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.statBlockService.CrossCheck(ctx, &statblock.CrossCheckInput{
		ID:         stringField(req, "id"),
		MonsterKey: stringField(req, "monster_key"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"monster":     output.Monster,
		"differences": output.Differences,
		"summary":     output.Summary,
	})
}

func stringField(s *structpb.Struct, key string) string {
	return s.GetFields()[key].GetStringValue()
}

// respond converts v to a Struct through its JSON form so response field
// names follow the json tags of the domain types
func respond(v map[string]any) (*structpb.Struct, error) {
	st, err := ToStruct(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return st, nil
}

// ToStruct converts any JSON-serializable value to a Struct
func ToStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal response")
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.Wrap(err, "failed to decode response")
	}

	st, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build response")
	}
	return st, nil
}

// FromStruct decodes a Struct into v through its JSON form
func FromStruct(st *structpb.Struct, v any) error {
	data, err := json.Marshal(st.AsMap())
	if err != nil {
		return errors.Wrap(err, "failed to marshal struct")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode struct")
	}
	return nil
}
