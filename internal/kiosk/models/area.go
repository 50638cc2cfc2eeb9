// Package models defines the persisted kiosk record shapes and the entry
// status state machine. JSON tags mirror the stored document fields, so
// legacy rows keep reading back correctly after migrations.
package models

// AreaCategory selects which map gallery an area appears in.
type AreaCategory string

const (
	CategoryCTMT AreaCategory = "CTMT"
	CategoryRHR  AreaCategory = "RHR"
)

// PlaceholderMapPath is used when an area has no uploaded map image.
const PlaceholderMapPath = "/maps/placeholder.svg"

// AreaFlags carries capability hints for an area.
type AreaFlags struct {
	NeedsInterlocksBrief bool `json:"needsInterlocksBrief,omitempty" yaml:"needsInterlocksBrief,omitempty"`
	TempShielding        bool `json:"tempShielding,omitempty" yaml:"tempShielding,omitempty"`
	RespProtectionZone   bool `json:"respProtectionZone,omitempty" yaml:"respProtectionZone,omitempty"`
}

// Area is a referenceable physical location with a map image.
// Id is immutable once created. Rows written before the category field
// existed may lack Category; use ResolvedCategory when filtering.
type Area struct {
	Id       string       `json:"id"`
	Name     string       `json:"name"`
	Category AreaCategory `json:"category,omitempty"`
	MapPath  string       `json:"mapPath,omitempty"`
	Flags    *AreaFlags   `json:"flags,omitempty"`

	// Survey metadata carried through from seed data.
	Elevation        string  `json:"elevation,omitempty"`
	DoseRateMremHr   float64 `json:"doseRate_mrem_hr,omitempty"`
	ContaminationCpm float64 `json:"contamination_cpm,omitempty"`
	HFC              string  `json:"hfc,omitempty"`
	Notes            string  `json:"notes,omitempty"`
}

// ResolvedCategory never fails: legacy rows without a category read as CTMT.
func (a Area) ResolvedCategory() AreaCategory {
	if a.Category == "" {
		return CategoryCTMT
	}
	return a.Category
}

func (a Area) IsCTMT() bool { return a.ResolvedCategory() == CategoryCTMT }

func (a Area) IsRHR() bool { return a.Category == CategoryRHR }

// MapPathOrPlaceholder resolves an empty map path to the placeholder image.
func (a Area) MapPathOrPlaceholder() string {
	if a.MapPath == "" {
		return PlaceholderMapPath
	}
	return a.MapPath
}
