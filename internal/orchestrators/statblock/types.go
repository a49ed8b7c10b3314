package statblock

import (
	"github.com/KirkDiggler/statblock-api/internal/clients/srd"
	"github.com/KirkDiggler/statblock-api/internal/fixtures"
	parseresults "github.com/KirkDiggler/statblock-api/internal/repositories/parse_results"
	"github.com/KirkDiggler/statblock-api/internal/statblock"
)

// Export formats
const (
	FormatJSON       = "json"
	FormatFoundryV10 = "foundry-v10"
	FormatFoundryV12 = "foundry-v12"
	FormatXLSX       = "xlsx"
)

// ExportFormats lists the formats ExportRecord accepts
var ExportFormats = []string{FormatJSON, FormatFoundryV10, FormatFoundryV12, FormatXLSX}

// ParseStatBlockInput defines the request for parsing a stat block
type ParseStatBlockInput struct {
	Text   string
	Source string
}

// ParseStatBlockOutput defines the response for parsing a stat block
type ParseStatBlockOutput struct {
	Record *parseresults.Record
}

// GetParseResultInput defines the request for fetching a stored parse
type GetParseResultInput struct {
	ID string
}

// GetParseResultOutput defines the response for fetching a stored parse
type GetParseResultOutput struct {
	Record *parseresults.Record
}

// SetOverrideInput defines the request for correcting one field
type SetOverrideInput struct {
	ID    string
	Field string
	Value string
}

// SetOverrideOutput defines the response for correcting one field
type SetOverrideOutput struct {
	Entry  *statblock.FieldRecord
	Record *parseresults.Record
}

// ExportRecordInput defines the request for exporting a stored parse
type ExportRecordInput struct {
	ID     string
	Format string
}

// ExportRecordOutput defines the response for exporting a stored parse
type ExportRecordOutput struct {
	Data        []byte
	ContentType string
	Filename    string
}

// CrossCheckInput defines the request for comparing a stored parse with
// an SRD monster. MonsterKey defaults to the parsed name.
type CrossCheckInput struct {
	ID         string
	MonsterKey string
}

// CrossCheckOutput defines the response for a cross-check
type CrossCheckOutput struct {
	Monster     *srd.Monster
	Differences []fixtures.Difference
	Summary     fixtures.Summary
}
