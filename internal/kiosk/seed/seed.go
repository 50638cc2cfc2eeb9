// Package seed parses area definition files. Two layouts are accepted, in
// JSON or YAML: a flat list of areas, or a document grouping them under
// "ctmt" and "rhr" keys. Grouped rows inherit their group's category unless
// the row sets one explicitly.
package seed

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hrakiosk/internal/common"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/models"
	"gopkg.in/yaml.v3"
)

// SeedArea is one row of a seed file. Field names match the stored area
// document so the same file reads under both codecs.
type SeedArea struct {
	Id       string              `json:"id" yaml:"id"`
	Name     string              `json:"name" yaml:"name"`
	Category models.AreaCategory `json:"category,omitempty" yaml:"category,omitempty"`
	MapPath  string              `json:"mapPath,omitempty" yaml:"mapPath,omitempty"`
	Flags    *models.AreaFlags   `json:"flags,omitempty" yaml:"flags,omitempty"`

	Elevation        string  `json:"elevation,omitempty" yaml:"elevation,omitempty"`
	DoseRateMremHr   float64 `json:"doseRate_mrem_hr,omitempty" yaml:"doseRate_mrem_hr,omitempty"`
	ContaminationCpm float64 `json:"contamination_cpm,omitempty" yaml:"contamination_cpm,omitempty"`
	HFC              string  `json:"hfc,omitempty" yaml:"hfc,omitempty"`
	Notes            string  `json:"notes,omitempty" yaml:"notes,omitempty"`
}

type groupedSeed struct {
	CTMT []SeedArea `json:"ctmt" yaml:"ctmt"`
	RHR  []SeedArea `json:"rhr" yaml:"rhr"`
}

type decodeFunc func(data []byte, v any) error

// Load parses a seed document and returns normalized areas ready for
// Store.ReplaceAreas. A row without an id, or a repeated id, fails the
// whole load with common.ErrorValidation.
func Load(data []byte) ([]models.Area, error) {
	decode := decodeFunc(yaml.Unmarshal)
	if json.Valid(data) {
		decode = json.Unmarshal
	}

	var flat []SeedArea
	if err := decode(data, &flat); err == nil {
		return normalize(flat)
	}

	var grouped groupedSeed
	if err := decode(data, &grouped); err != nil {
		return nil, fmt.Errorf("%w: seed file is neither an area list nor a ctmt/rhr document: %v",
			common.ErrorValidation, err)
	}
	rows := make([]SeedArea, 0, len(grouped.CTMT)+len(grouped.RHR))
	for _, row := range grouped.CTMT {
		if row.Category == "" {
			row.Category = models.CategoryCTMT
		}
		rows = append(rows, row)
	}
	for _, row := range grouped.RHR {
		if row.Category == "" {
			row.Category = models.CategoryRHR
		}
		rows = append(rows, row)
	}
	return normalize(rows)
}

func normalize(rows []SeedArea) ([]models.Area, error) {
	areas := make([]models.Area, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for i, row := range rows {
		id := strings.TrimSpace(row.Id)
		if id == "" {
			return nil, fmt.Errorf("%w: seed row %d has no id", common.ErrorValidation, i)
		}
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: seed id %q appears more than once", common.ErrorValidation, id)
		}
		seen[id] = struct{}{}

		category := row.Category
		if category == "" {
			category = models.CategoryCTMT
		}
		mapPath := strings.TrimSpace(row.MapPath)
		if mapPath == "" {
			mapPath = models.PlaceholderMapPath
		}

		areas = append(areas, models.Area{
			Id:               id,
			Name:             strings.TrimSpace(row.Name),
			Category:         category,
			MapPath:          mapPath,
			Flags:            row.Flags,
			Elevation:        row.Elevation,
			DoseRateMremHr:   row.DoseRateMremHr,
			ContaminationCpm: row.ContaminationCpm,
			HFC:              row.HFC,
			Notes:            row.Notes,
		})
	}
	return areas, nil
}
