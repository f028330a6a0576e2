package snapshot

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Blob written before per-unit assignments and employee payments existed
const legacyBlob = `{
	"language": "",
	"customers": [{"id": "c1", "fullName": "Asha Patil", "phone": "9876543210"}],
	"measurements": [],
	"orders": [{
		"id": "o1",
		"orderNumber": "DT-20250101-ab12",
		"customerId": "c1",
		"status": "In Progress",
		"items": [
			{"id": "i1", "garmentType": "Shirt", "quantity": 3, "unitPrice": "500"},
			{"id": "i2", "garmentType": "Pant", "quantity": 0, "unitPrice": "800"}
		]
	}],
	"garmentTypes": [{"name": "Shirt", "measurementFields": ["chest"]}],
	"employees": [{"id": "e1", "name": "Suresh", "role": "Tailor"}]
}`

func TestDecodeUpgradesLegacyBlob(t *testing.T) {
	snap, err := Decode([]byte(legacyBlob))
	require.NoError(t, err)

	assert.Equal(t, "en", string(snap.Language), "missing language defaults to English")

	require.Len(t, snap.Orders, 1)
	items := snap.Orders[0].Items
	require.Len(t, items, 2)

	// Pre-assignment items get one unassigned entry per unit
	require.Len(t, items[0].Assignments, 3)
	assert.Equal(t, "i1-A1", items[0].Assignments[0].ID)
	assert.Equal(t, "i1-A3", items[0].Assignments[2].ID)
	assert.Empty(t, items[0].Assignments[0].EmployeeID)
	assert.True(t, items[0].Assignments[0].Payment.IsZero())

	// A corrupt zero quantity still yields one unit
	require.Len(t, items[1].Assignments, 1)
	assert.Equal(t, "i2-A1", items[1].Assignments[0].ID)

	// Employees predating payments and phone get empty defaults
	require.Len(t, snap.Employees, 1)
	require.NotNil(t, snap.Employees[0].Payments)
	assert.Empty(t, snap.Employees[0].Payments)
	assert.Empty(t, snap.Employees[0].Phone)
}

func TestDecodeDefaultsMissingAssignmentPayment(t *testing.T) {
	blob := `{
		"orders": [{
			"id": "o1",
			"items": [{
				"id": "i1", "quantity": 2, "unitPrice": "100",
				"assignments": [
					{"id": "a1", "employeeId": "e1"},
					{"id": "a2", "employeeId": "e1", "payment": "75"}
				]
			}]
		}]
	}`

	snap, err := Decode([]byte(blob))
	require.NoError(t, err)

	assignments := snap.Orders[0].Items[0].Assignments
	require.Len(t, assignments, 2)
	assert.True(t, assignments[0].Payment.IsZero())
	assert.True(t, assignments[1].Payment.Equal(decimal.NewFromInt(75)))
	assert.Equal(t, "e1", assignments[0].EmployeeID)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	snap := DefaultSnapshot()

	data, err := Encode(snap)
	require.NoError(t, err)

	back, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, snap.Language, back.Language)
	assert.Equal(t, len(snap.GarmentTypes), len(back.GarmentTypes))
	assert.Equal(t, snap.ShopInfo, back.ShopInfo)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("not json"))
	assert.Error(t, err)
}
