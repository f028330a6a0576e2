package derive

import "tailor-backend/internal/models"

// Workload counts, per employee, the garment units assigned to them on
// orders currently in progress. Every known employee gets an entry, so
// idle employees show up as zero.
func Workload(st models.AppState) map[string]int {
	workload := make(map[string]int, len(st.Employees))
	for _, e := range st.Employees {
		workload[e.ID] = 0
	}
	for _, o := range st.Orders {
		if o.Status != models.StatusInProgress {
			continue
		}
		for _, item := range o.Items {
			for _, a := range item.Assignments {
				if _, known := workload[a.EmployeeID]; known && a.EmployeeID != "" {
					workload[a.EmployeeID]++
				}
			}
		}
	}
	return workload
}
