package services

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailor-backend/internal/assign"
	"tailor-backend/internal/models"
	"tailor-backend/internal/state"
	"tailor-backend/internal/timeutil"
)

func newOrderFixture(t *testing.T) (*OrderService, *state.Store) {
	t.Helper()
	store := state.NewStore(models.AppState{
		Customers: []models.Customer{{ID: "c1", FullName: "Asha Patil", Phone: "9876543210"}},
		Employees: []models.Employee{{ID: "e1", Name: "Suresh"}},
		Measurements: []models.Measurement{
			{ID: "m1", CustomerID: "c1", GarmentType: "Shirt", Values: map[string]float64{"Chest": 40}, CreatedAt: timeutil.Now()},
		},
		GarmentTypes: []models.GarmentTypeDefinition{{Name: "Shirt", MeasurementFields: []string{"Chest"}}},
	})
	return NewOrderService(store, NewMeasurementService(store)), store
}

func createTestOrder(t *testing.T, svc *OrderService) models.Order {
	t.Helper()
	order, err := svc.Create(models.CreateOrderRequest{
		CustomerID: "c1",
		DueDate:    timeutil.Now().AddDate(0, 0, 7),
		Items: []models.CreateOrderItemRequest{
			{GarmentType: "Shirt", Quantity: 2, UnitPrice: decimal.NewFromInt(500)},
		},
		Discount: decimal.NewFromInt(100),
		Advance:  decimal.NewFromInt(300),
	})
	require.NoError(t, err)
	return order
}

func TestCreateOrder(t *testing.T) {
	svc, store := newOrderFixture(t)
	order := createTestOrder(t, svc)

	assert.Equal(t, models.StatusInProgress, order.Status, "orders open straight into In Progress")
	assert.True(t, strings.HasPrefix(order.OrderNumber, "DT-"))
	assert.True(t, order.IsNew(timeutil.Now()))

	require.Len(t, order.Items, 1)
	item := order.Items[0]
	assert.Equal(t, map[string]float64{"Chest": 40}, item.MeasurementSnapshot, "snapshot copied from latest measurement")
	require.Len(t, item.Assignments, 2, "every unit starts unassigned")
	assert.Empty(t, item.Assignments[0].EmployeeID)

	// Advance became the first cash payment and totals are stored
	require.Len(t, order.Payments, 1)
	assert.Equal(t, models.PaymentCash, order.Payments[0].Method)
	assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(1000)))
	assert.True(t, order.Total.Equal(decimal.NewFromInt(900)))
	assert.True(t, order.Advance.Equal(decimal.NewFromInt(300)))
	assert.True(t, order.Balance.Equal(decimal.NewFromInt(600)))

	assert.Len(t, store.State().Orders, 1)
}

func TestCreateOrderValidation(t *testing.T) {
	svc, _ := newOrderFixture(t)

	_, err := svc.Create(models.CreateOrderRequest{CustomerID: "nobody", Items: []models.CreateOrderItemRequest{{GarmentType: "Shirt", Quantity: 1}}})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Create(models.CreateOrderRequest{CustomerID: "c1"})
	assert.Error(t, err, "at least one item required")

	_, err = svc.Create(models.CreateOrderRequest{
		CustomerID: "c1",
		Items:      []models.CreateOrderItemRequest{{GarmentType: "Shirt", Quantity: 0}},
	})
	assert.Error(t, err, "zero quantity rejected")
}

func TestUpdateStatusIsOneDirectional(t *testing.T) {
	svc, _ := newOrderFixture(t)
	order := createTestOrder(t, svc)

	_, err := svc.UpdateStatus(order.ID, models.StatusDelivered)
	assert.Error(t, err, "cannot skip Completed")

	order2, err := svc.UpdateStatus(order.ID, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, order2.Status)

	_, err = svc.UpdateStatus(order.ID, models.StatusInProgress)
	assert.Error(t, err, "no going back")

	order3, err := svc.UpdateStatus(order.ID, models.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, order3.Status)

	_, err = svc.UpdateStatus(order.ID, models.StatusCancelled)
	assert.Error(t, err, "delivered is terminal")
}

func TestCancelFromCompleted(t *testing.T) {
	svc, _ := newOrderFixture(t)
	order := createTestOrder(t, svc)

	_, err := svc.UpdateStatus(order.ID, models.StatusCompleted)
	require.NoError(t, err)

	cancelled, err := svc.UpdateStatus(order.ID, models.StatusCancelled)
	require.NoError(t, err, "completed work can still be cancelled before delivery")
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
}

func TestAddPayment(t *testing.T) {
	svc, _ := newOrderFixture(t)
	order := createTestOrder(t, svc) // balance 600

	_, err := svc.AddPayment(order.ID, models.CreateOrderPaymentRequest{Amount: decimal.NewFromInt(700)})
	assert.Error(t, err, "payment exceeding balance rejected")

	_, err = svc.AddPayment(order.ID, models.CreateOrderPaymentRequest{Amount: decimal.Zero})
	assert.Error(t, err)

	updated, err := svc.AddPayment(order.ID, models.CreateOrderPaymentRequest{Amount: decimal.NewFromInt(600), Method: models.PaymentUPI})
	require.NoError(t, err)
	assert.True(t, updated.Balance.IsZero())
	assert.True(t, updated.Advance.Equal(updated.Total))
	require.Len(t, updated.Payments, 2)
	assert.Equal(t, models.PaymentUPI, updated.Payments[1].Method)
}

func TestAddPaymentOnCancelledOrder(t *testing.T) {
	svc, _ := newOrderFixture(t)
	order := createTestOrder(t, svc)

	_, err := svc.UpdateStatus(order.ID, models.StatusCancelled)
	require.NoError(t, err)

	_, err = svc.AddPayment(order.ID, models.CreateOrderPaymentRequest{Amount: decimal.NewFromInt(100)})
	assert.Error(t, err)
}

func TestSaveAssignments(t *testing.T) {
	svc, _ := newOrderFixture(t)
	order := createTestOrder(t, svc)
	itemID := order.Items[0].ID

	updated, err := svc.SaveAssignments(order.ID, itemID, []models.AssignmentGroupRequest{
		{EmployeeID: "e1", Quantity: 1, Payment: decimal.NewFromInt(150)},
	})
	require.NoError(t, err)

	assignments := updated.Items[0].Assignments
	require.Len(t, assignments, 2)
	assert.Equal(t, "e1", assignments[0].EmployeeID)
	assert.Empty(t, assignments[1].EmployeeID)

	groups, err := svc.AssignmentGroups(order.ID, itemID)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, 1, groups[0].Quantity)
}

func TestSaveAssignmentsRejectsOverAssignment(t *testing.T) {
	svc, _ := newOrderFixture(t)
	order := createTestOrder(t, svc)

	_, err := svc.SaveAssignments(order.ID, order.Items[0].ID, []models.AssignmentGroupRequest{
		{EmployeeID: "e1", Quantity: 3, Payment: decimal.NewFromInt(150)},
	})
	require.Error(t, err)
	var oaErr *assign.OverAssignedError
	assert.ErrorAs(t, err, &oaErr)

	// Prior assignments untouched
	view, err := svc.Get(order.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Order.Items[0].Assignments[0].EmployeeID)
}

func TestSaveAssignmentsUnknownEmployee(t *testing.T) {
	svc, _ := newOrderFixture(t)
	order := createTestOrder(t, svc)

	_, err := svc.SaveAssignments(order.ID, order.Items[0].ID, []models.AssignmentGroupRequest{
		{EmployeeID: "ghost", Quantity: 1},
	})
	assert.Error(t, err)
}

func TestUpdateOrderRefitsAssignmentsOnQuantityChange(t *testing.T) {
	svc, _ := newOrderFixture(t)
	order := createTestOrder(t, svc)
	itemID := order.Items[0].ID

	_, err := svc.SaveAssignments(order.ID, itemID, []models.AssignmentGroupRequest{
		{EmployeeID: "e1", Quantity: 2, Payment: decimal.NewFromInt(150)},
	})
	require.NoError(t, err)

	updated, err := svc.Update(order.ID, models.UpdateOrderRequest{
		Items: []models.UpdateOrderItemRequest{
			{ID: itemID, GarmentType: "Shirt", Quantity: 3, UnitPrice: decimal.NewFromInt(500)},
		},
		Discount: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	assignments := updated.Items[0].Assignments
	require.Len(t, assignments, 3)
	assert.Equal(t, "e1", assignments[0].EmployeeID)
	assert.Equal(t, "e1", assignments[1].EmployeeID)
	assert.Empty(t, assignments[2].EmployeeID)
	assert.True(t, updated.Subtotal.Equal(decimal.NewFromInt(1500)))
}

func TestUpdateFrozenOrderRejected(t *testing.T) {
	svc, _ := newOrderFixture(t)
	order := createTestOrder(t, svc)

	_, err := svc.UpdateStatus(order.ID, models.StatusCompleted)
	require.NoError(t, err)

	_, err = svc.Update(order.ID, models.UpdateOrderRequest{
		Items: []models.UpdateOrderItemRequest{{ID: order.Items[0].ID, GarmentType: "Shirt", Quantity: 1}},
	})
	assert.Error(t, err)

	_, err = svc.SaveAssignments(order.ID, order.Items[0].ID, nil)
	assert.Error(t, err)
}
