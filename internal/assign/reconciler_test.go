package assign

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailor-backend/internal/models"
)

func item(id string, quantity int) models.LineItem {
	return models.LineItem{ID: id, Quantity: quantity}
}

func TestExpandFillsUnassignedRemainder(t *testing.T) {
	groups := []Group{
		{EmployeeID: "emp1", Quantity: 2, Payment: decimal.NewFromInt(150)},
	}

	out, err := Expand(item("item1", 5), groups)
	require.NoError(t, err)
	require.Len(t, out, 5, "one entry per physical unit")

	assert.Equal(t, "item1-emp1-0", out[0].ID)
	assert.Equal(t, "item1-emp1-1", out[1].ID)
	assert.Equal(t, "emp1", out[1].EmployeeID)
	assert.True(t, out[0].Payment.Equal(decimal.NewFromInt(150)))

	assert.Equal(t, "item1-unassigned-0", out[2].ID)
	assert.Empty(t, out[2].EmployeeID)
	assert.True(t, out[2].Payment.IsZero())
	assert.Equal(t, "item1-unassigned-2", out[4].ID)
}

func TestExpandRejectsOverAssignment(t *testing.T) {
	groups := []Group{
		{EmployeeID: "emp1", Quantity: 2},
		{EmployeeID: "emp2", Quantity: 2},
	}

	_, err := Expand(item("item1", 3), groups)
	require.Error(t, err)

	var oaErr *OverAssignedError
	require.ErrorAs(t, err, &oaErr)
	assert.Equal(t, 4, oaErr.Assigned)
	assert.Equal(t, 3, oaErr.Quantity)
}

func TestExpandSkipsEmptyGroups(t *testing.T) {
	groups := []Group{
		{EmployeeID: "", Quantity: 2, Payment: decimal.NewFromInt(90)},
		{EmployeeID: "emp1", Quantity: 0},
		{EmployeeID: "emp2", Quantity: 1, Payment: decimal.NewFromInt(80)},
	}

	out, err := Expand(item("item1", 3), groups)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "emp2", out[0].EmployeeID)
	assert.Empty(t, out[1].EmployeeID)
	assert.Empty(t, out[2].EmployeeID)
}

func TestGroupAssignmentsRoundTrip(t *testing.T) {
	li := item("item1", 4)
	groups := []Group{
		{EmployeeID: "emp1", Quantity: 2, Payment: decimal.NewFromInt(100)},
		{EmployeeID: "emp2", Quantity: 1, Payment: decimal.NewFromInt(120)},
	}

	out, err := Expand(li, groups)
	require.NoError(t, err)

	back := GroupAssignments(out)
	require.Len(t, back, 2, "unassigned units do not form a group")
	assert.Equal(t, groups[0].EmployeeID, back[0].EmployeeID)
	assert.Equal(t, groups[0].Quantity, back[0].Quantity)
	assert.True(t, back[0].Payment.Equal(groups[0].Payment))
	assert.Equal(t, groups[1].EmployeeID, back[1].EmployeeID)
}

func TestGroupAssignmentsFirstAppearanceOrder(t *testing.T) {
	assignments := []models.WorkAssignment{
		{ID: "a1", EmployeeID: "emp2", Payment: decimal.NewFromInt(50)},
		{ID: "a2", EmployeeID: "emp1", Payment: decimal.NewFromInt(70)},
		{ID: "a3", EmployeeID: "emp2", Payment: decimal.NewFromInt(60)},
	}

	groups := GroupAssignments(assignments)
	require.Len(t, groups, 2)
	assert.Equal(t, "emp2", groups[0].EmployeeID)
	assert.Equal(t, 2, groups[0].Quantity)
	// Rates are assumed uniform per employee; the last entry wins
	assert.True(t, groups[0].Payment.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, "emp1", groups[1].EmployeeID)
}

func TestRefitShrinkClampsGroups(t *testing.T) {
	li := item("item1", 5)
	groups := []Group{
		{EmployeeID: "emp1", Quantity: 3, Payment: decimal.NewFromInt(100)},
		{EmployeeID: "emp2", Quantity: 2, Payment: decimal.NewFromInt(100)},
	}
	li.Assignments, _ = Expand(li, groups)

	out := Refit(li, 2)
	require.Len(t, out, 2)
	assert.Equal(t, "emp1", out[0].EmployeeID)
	assert.Equal(t, "emp1", out[1].EmployeeID)
}

func TestRefitGrowPadsUnassigned(t *testing.T) {
	li := item("item1", 2)
	li.Assignments, _ = Expand(li, []Group{{EmployeeID: "emp1", Quantity: 2, Payment: decimal.NewFromInt(100)}})

	out := Refit(li, 4)
	require.Len(t, out, 4)
	assert.Equal(t, "emp1", out[0].EmployeeID)
	assert.Equal(t, "emp1", out[1].EmployeeID)
	assert.Empty(t, out[2].EmployeeID)
	assert.Empty(t, out[3].EmployeeID)
}
