package snapshot

import (
	"encoding/json"
	"fmt"

	"tailor-backend/internal/models"
)

// Export is the backup file format: the data collections only, never
// language, theme or authentication.
type Export struct {
	Customers    []models.Customer              `json:"customers"`
	Measurements []models.Measurement           `json:"measurements"`
	Orders       []models.Order                 `json:"orders"`
	GarmentTypes []models.GarmentTypeDefinition `json:"garmentTypes"`
	Employees    []models.Employee              `json:"employees"`
	ShopInfo     models.ShopInfo                `json:"shopInfo"`
}

// CaptureExport builds the backup payload from the current state
func CaptureExport(st models.AppState) Export {
	return Export{
		Customers:    st.Customers,
		Measurements: st.Measurements,
		Orders:       st.Orders,
		GarmentTypes: st.GarmentTypes,
		Employees:    st.Employees,
		ShopInfo:     st.ShopInfo,
	}
}

// requiredImportKeys gate an import: a file missing any of them is
// rejected before anything is dispatched. Employees is deliberately not
// required, older backups predate it.
var requiredImportKeys = []string{"customers", "orders", "measurements", "garmentTypes"}

// DecodeImport parses a backup file, rejecting files that do not carry
// the required collections. Orders and employees pass through the same
// upgrade fixes as persisted snapshots, so old backups import cleanly.
func DecodeImport(data []byte) (Export, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return Export{}, fmt.Errorf("backup: parse failed: %w", err)
	}
	for _, key := range requiredImportKeys {
		if _, ok := keys[key]; !ok {
			return Export{}, fmt.Errorf("backup: invalid file: missing %q", key)
		}
	}

	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return Export{}, fmt.Errorf("backup: parse failed: %w", err)
	}
	snap := upgrade(raw)

	exp := Export{
		Customers:    snap.Customers,
		Measurements: snap.Measurements,
		Orders:       snap.Orders,
		GarmentTypes: snap.GarmentTypes,
		ShopInfo:     snap.ShopInfo,
	}
	// Preserve "employees key absent" so RESTORE_STATE can apply its
	// empty-collection default
	if _, ok := keys["employees"]; ok {
		exp.Employees = snap.Employees
	}
	return exp, nil
}
