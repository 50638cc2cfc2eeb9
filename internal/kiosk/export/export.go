// Package export serializes entry records for handoff to station systems.
// The CSV column set is frozen: downstream spreadsheets were built against
// the original header row, including the legacy workOrder and leadBadge
// column names.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hrakiosk/internal/common"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/models"
)

// Format selects the serialization for an export batch.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown export format %q", common.ErrorValidation, s)
	}
}

// csvHeader is the frozen column order. workOrder carries the current
// workRequest value; leadBadge is always empty for current rows but must
// stay in the row.
var csvHeader = []string{
	"id",
	"timestamp",
	"areaId",
	"areaName",
	"status",
	"badgesMasked",
	"workOrder",
	"leadBadge",
	"planningNote",
	"exportedAt",
}

// ToCSV renders the records as a CSV document with a fixed header row.
// Records are written in the order given; callers decide the sort.
func ToCSV(records []models.EntryRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for i := range records {
		if err := w.Write(csvRow(&records[i])); err != nil {
			return nil, fmt.Errorf("failed to write csv row %s: %w", records[i].Id, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func csvRow(r *models.EntryRecord) []string {
	return []string{
		r.Id,
		r.Timestamp,
		r.AreaId,
		r.AreaName,
		string(r.Status),
		strings.Join(r.BadgesMasked, " "),
		r.WorkRequest,
		"",
		r.PlanningNote,
		r.ExportedAt,
	}
}

// ToJSON renders the records as an indented JSON array. Raw badge numbers
// never leave the store through an export, whatever the caller passed in.
func ToJSON(records []models.EntryRecord) ([]byte, error) {
	redacted := make([]models.EntryRecord, len(records))
	for i := range records {
		redacted[i] = records[i]
		redacted[i].Badges = nil
	}
	out, err := json.MarshalIndent(redacted, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export: %w", err)
	}
	return out, nil
}

// Render dispatches on format.
func Render(records []models.EntryRecord, format Format) ([]byte, error) {
	switch format {
	case FormatCSV:
		return ToCSV(records)
	case FormatJSON:
		return ToJSON(records)
	default:
		return nil, fmt.Errorf("%w: unknown export format %q", common.ErrorValidation, format)
	}
}
