package seed

import (
	"testing"

	"github.com/dmitrijs2005/hrakiosk/internal/common"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FlatJSON(t *testing.T) {
	data := []byte(`[
		{"id": "CTMT_100", "name": "Containment 100'", "category": "CTMT", "mapPath": "/maps/ctmt_100.svg"},
		{"id": "RHR_A", "name": "RHR Pump Room A", "category": "RHR"}
	]`)

	areas, err := Load(data)
	require.NoError(t, err)
	require.Len(t, areas, 2)

	assert.Equal(t, "CTMT_100", areas[0].Id)
	assert.Equal(t, "/maps/ctmt_100.svg", areas[0].MapPath)
	assert.Equal(t, models.CategoryRHR, areas[1].Category)
	assert.Equal(t, models.PlaceholderMapPath, areas[1].MapPath, "missing mapPath falls back to placeholder")
}

func TestLoad_GroupedJSON(t *testing.T) {
	data := []byte(`{
		"ctmt": [{"id": "CTMT_100", "name": "Containment 100'"}],
		"rhr":  [{"id": "RHR_A", "name": "RHR Pump Room A"}]
	}`)

	areas, err := Load(data)
	require.NoError(t, err)
	require.Len(t, areas, 2)
	assert.Equal(t, models.CategoryCTMT, areas[0].Category, "group key supplies the category")
	assert.Equal(t, models.CategoryRHR, areas[1].Category)
}

func TestLoad_GroupKeyDoesNotOverrideExplicitCategory(t *testing.T) {
	data := []byte(`{"ctmt": [{"id": "X", "name": "Misfiled", "category": "RHR"}]}`)

	areas, err := Load(data)
	require.NoError(t, err)
	require.Len(t, areas, 1)
	assert.Equal(t, models.CategoryRHR, areas[0].Category)
}

func TestLoad_FlatYAML(t *testing.T) {
	data := []byte(`
- id: CTMT_100
  name: Containment 100'
  elevation: "100'"
  doseRate_mrem_hr: 45.5
  flags:
    tempShielding: true
- id: RHR_A
  name: RHR Pump Room A
  category: RHR
`)

	areas, err := Load(data)
	require.NoError(t, err)
	require.Len(t, areas, 2)
	assert.Equal(t, models.CategoryCTMT, areas[0].Category, "missing category defaults to CTMT")
	assert.Equal(t, 45.5, areas[0].DoseRateMremHr)
	require.NotNil(t, areas[0].Flags)
	assert.True(t, areas[0].Flags.TempShielding)
}

func TestLoad_GroupedYAML(t *testing.T) {
	data := []byte(`
ctmt:
  - id: CTMT_100
    name: Containment 100'
rhr:
  - id: RHR_A
    name: RHR Pump Room A
  - id: RHR_B
    name: RHR Pump Room B
`)

	areas, err := Load(data)
	require.NoError(t, err)
	require.Len(t, areas, 3)
	assert.Equal(t, models.CategoryRHR, areas[2].Category)
}

func TestLoad_MissingIdFails(t *testing.T) {
	data := []byte(`[{"name": "No id here"}]`)

	_, err := Load(data)
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestLoad_DuplicateIdFails(t *testing.T) {
	data := []byte(`[{"id": "A", "name": "First"}, {"id": "A", "name": "Second"}]`)

	_, err := Load(data)
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestLoad_GarbageFails(t *testing.T) {
	_, err := Load([]byte(`: not a document :::`))
	assert.ErrorIs(t, err, common.ErrorValidation)
}
