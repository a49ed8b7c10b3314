// Package report renders a parse result as an xlsx workbook for review
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/KirkDiggler/statblock-api/internal/errors"
	"github.com/KirkDiggler/statblock-api/internal/statblock"
)

// Sheet names
const (
	SheetSummary  = "Summary"
	SheetLedger   = "Ledger"
	SheetActions  = "Actions"
	SheetWarnings = "Warnings"
)

var (
	ledgerHeader  = []any{"Field", "Raw Value", "Method", "Confidence"}
	actionsHeader = []any{"Section", "Name", "Attack", "Reach/Range", "Damage", "Average", "Type", "Recharge/Uses"}
	warnHeader    = []any{"Kind", "Field", "Message"}
)

// Build creates the workbook for a parse result. The caller owns the file
// and must close it.
func Build(r *statblock.ParseResult) (*excelize.File, error) {
	if r == nil {
		return nil, errors.InvalidArgument("parse result is required")
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "failed to rename sheet")
	}
	for _, sheet := range []string{SheetLedger, SheetActions, SheetWarnings} {
		if _, err := f.NewSheet(sheet); err != nil {
			_ = f.Close()
			return nil, errors.Wrapf(err, "failed to add sheet %s", sheet)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "failed to create style")
	}

	steps := []func(*excelize.File, *statblock.ParseResult, int) error{
		writeSummary,
		writeLedger,
		writeActions,
		writeWarnings,
	}
	for _, step := range steps {
		if err := step(f, r, headerStyle); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	return f, nil
}

// Write renders the workbook for a parse result to w
func Write(w io.Writer, r *statblock.ParseResult) error {
	f, err := Build(r)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "failed to write workbook")
	}
	return nil
}

func writeSummary(f *excelize.File, r *statblock.ParseResult, style int) error {
	rows := [][]any{
		{"Name", r.Name},
		{"Accuracy", fmt.Sprintf("%d%%", r.Accuracy)},
		{"Fields", r.Stats.Total},
		{"Parsed", r.Stats.Parsed},
		{"Exact", r.Stats.Exact},
		{"Fuzzy", r.Stats.Fuzzy},
		{"Warnings", len(r.Warnings)},
		{"Challenge", r.ChallengeRating},
		{"Proficiency Bonus", statblock.FormatModifier(r.ProficiencyBonus)},
	}
	if err := writeRows(f, SheetSummary, 1, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetSummary, "A1", fmt.Sprintf("A%d", len(rows)), style); err != nil {
		return errors.Wrap(err, "failed to style summary")
	}
	return f.SetColWidth(SheetSummary, "A", "A", 20)
}

func writeLedger(f *excelize.File, r *statblock.ParseResult, style int) error {
	rows := make([][]any, 0, len(r.Ledger))
	for _, rec := range r.Ledger {
		rows = append(rows, []any{string(rec.Name), rec.RawValue, string(rec.Method), rec.Confidence})
	}
	return writeTable(f, SheetLedger, ledgerHeader, rows, style)
}

func writeActions(f *excelize.File, r *statblock.ParseResult, style int) error {
	sections := []struct {
		name    statblock.Section
		actions []statblock.Action
	}{
		{statblock.SectionTraits, r.Traits},
		{statblock.SectionActions, r.Actions},
		{statblock.SectionBonusActions, r.BonusActions},
		{statblock.SectionReactions, r.Reactions},
		{statblock.SectionLegendaryActions, r.LegendaryActions},
	}

	var rows [][]any
	for _, section := range sections {
		for _, action := range section.actions {
			rows = append(rows, actionRow(string(section.name), action))
		}
	}
	return writeTable(f, SheetActions, actionsHeader, rows, style)
}

func actionRow(section string, a statblock.Action) []any {
	row := []any{section, a.Name, "", "", "", "", "", strings.TrimSpace(a.Recharge + " " + a.Uses)}
	if a.Attack != nil {
		row[2] = statblock.FormatModifier(a.Attack.Bonus)
		switch {
		case a.Attack.Reach != nil:
			row[3] = fmt.Sprintf("reach %d ft.", *a.Attack.Reach)
		case a.Attack.Range != nil && a.Attack.Range.Long != nil:
			row[3] = fmt.Sprintf("%d/%d ft.", a.Attack.Range.Normal, *a.Attack.Range.Long)
		case a.Attack.Range != nil:
			row[3] = fmt.Sprintf("%d ft.", a.Attack.Range.Normal)
		}
	}
	if a.Damage != nil {
		row[4] = a.Damage.Formula
		row[5] = a.Damage.Average
		row[6] = a.Damage.Type
		if extra := a.Damage.Additional; extra != nil {
			row[4] = fmt.Sprintf("%s + %s", a.Damage.Formula, extra.Formula)
			row[5] = a.Damage.Average + extra.Average
			row[6] = fmt.Sprintf("%s, %s", a.Damage.Type, extra.Type)
		}
	}
	return row
}

func writeWarnings(f *excelize.File, r *statblock.ParseResult, style int) error {
	rows := make([][]any, 0, len(r.Warnings))
	for _, w := range r.Warnings {
		rows = append(rows, []any{string(w.Kind), string(w.Field), w.Message})
	}
	return writeTable(f, SheetWarnings, warnHeader, rows, style)
}

func writeTable(f *excelize.File, sheet string, header []any, rows [][]any, style int) error {
	if err := writeRows(f, sheet, 1, [][]any{header}); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return errors.Wrap(err, "invalid header range")
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return errors.Wrapf(err, "failed to style %s header", sheet)
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return errors.Wrapf(err, "failed to freeze %s header", sheet)
	}
	return writeRows(f, sheet, 2, rows)
}

func writeRows(f *excelize.File, sheet string, start int, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, start+i)
		if err != nil {
			return errors.Wrap(err, "invalid cell")
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "failed to write %s row %d", sheet, start+i)
		}
	}
	return nil
}
