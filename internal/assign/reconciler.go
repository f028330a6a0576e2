// Package assign bridges the per-unit work assignment array (ground
// truth, one entry per physical garment unit) and the grouped-by-employee
// editing view (one row per distinct employee with a uniform per-unit rate).
package assign

import (
	"fmt"

	"github.com/shopspring/decimal"

	"tailor-backend/internal/models"
)

// Group is one editing row: a distinct employee, how many of the item's
// units they produce and the per-unit rate they are paid.
type Group struct {
	EmployeeID string          `json:"employeeId"`
	Quantity   int             `json:"quantity"`
	Payment    decimal.Decimal `json:"payment"`
}

// OverAssignedError reports a grouped edit whose summed quantity exceeds
// the item's ordered quantity. The edit is rejected as a whole.
type OverAssignedError struct {
	Assigned int
	Quantity int
}

func (e *OverAssignedError) Error() string {
	return fmt.Sprintf("cannot assign %d units: only %d ordered", e.Assigned, e.Quantity)
}

// GroupAssignments partitions assignments by employee. Entries with no
// employee are excluded and implicitly become the unassigned remainder.
// A group's payment is the rate found on that employee's entries; rates
// are assumed uniform within a group, so the last-seen value wins.
// Groups come back in first-appearance order.
func GroupAssignments(assignments []models.WorkAssignment) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, a := range assignments {
		if a.EmployeeID == "" {
			continue
		}
		if i, ok := index[a.EmployeeID]; ok {
			groups[i].Quantity++
			groups[i].Payment = a.Payment
			continue
		}
		index[a.EmployeeID] = len(groups)
		groups = append(groups, Group{EmployeeID: a.EmployeeID, Quantity: 1, Payment: a.Payment})
	}
	return groups
}

// Expand materializes the per-unit assignment array from grouped rows.
// The result always has exactly item.Quantity entries: one per grouped
// unit plus unassigned zero-payment fillers for the remainder. Work
// photos are cleared on re-assignment. Groups with no employee or a
// non-positive quantity contribute nothing.
func Expand(item models.LineItem, groups []Group) ([]models.WorkAssignment, error) {
	assigned := 0
	for _, g := range groups {
		if g.Quantity > 0 {
			assigned += g.Quantity
		}
	}
	if assigned > item.Quantity {
		return nil, &OverAssignedError{Assigned: assigned, Quantity: item.Quantity}
	}

	out := make([]models.WorkAssignment, 0, item.Quantity)
	for _, g := range groups {
		if g.EmployeeID == "" || g.Quantity <= 0 {
			continue
		}
		for i := 0; i < g.Quantity; i++ {
			out = append(out, models.WorkAssignment{
				ID:         fmt.Sprintf("%s-%s-%d", item.ID, g.EmployeeID, i),
				EmployeeID: g.EmployeeID,
				Payment:    g.Payment,
			})
		}
	}
	for i := 0; len(out) < item.Quantity; i++ {
		out = append(out, models.WorkAssignment{
			ID:      fmt.Sprintf("%s-unassigned-%d", item.ID, i),
			Payment: decimal.Zero,
		})
	}
	return out, nil
}

// Refit adapts an existing assignment list to a new unit count, keeping
// assigned entries first and padding or trimming the unassigned tail.
// Used when an order edit changes an item's quantity.
func Refit(item models.LineItem, quantity int) []models.WorkAssignment {
	groups := GroupAssignments(item.Assignments)
	assigned := 0
	for i := range groups {
		if assigned+groups[i].Quantity > quantity {
			groups[i].Quantity = quantity - assigned
		}
		assigned += groups[i].Quantity
	}
	resized := item
	resized.Quantity = quantity
	out, _ := Expand(resized, groups) // groups were clamped, cannot over-assign
	return out
}
