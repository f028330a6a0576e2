package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/shopspring/decimal"

	"tailor-backend/internal/currency"
	"tailor-backend/internal/state"
	"tailor-backend/internal/timeutil"
)

// InvoiceService renders print-ready documents from state data. The
// core only produces the bytes; delivery is the caller's concern.
type InvoiceService struct {
	Store     *state.Store
	Employees *EmployeeService
}

func NewInvoiceService(store *state.Store, employees *EmployeeService) *InvoiceService {
	return &InvoiceService{Store: store, Employees: employees}
}

// OrderInvoicePDF renders the customer invoice for an order
func (s *InvoiceService) OrderInvoicePDF(orderID string) ([]byte, error) {
	st := s.Store.State()
	order, ok := st.FindOrder(orderID)
	if !ok {
		return nil, ErrNotFound
	}
	customer, ok := st.FindCustomer(order.CustomerID)
	if !ok {
		return nil, ErrNotFound
	}
	shop := st.ShopInfo

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header: shop identity left, invoice number right
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(120, 8, shop.Name, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(70, 8, "INVOICE", "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(120, 5, shop.Tagline, "", 0, "L", false, 0, "")
	pdf.CellFormat(70, 5, order.OrderNumber, "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(120, 4, shop.Address, "", 0, "L", false, 0, "")
	pdf.CellFormat(70, 4, fmt.Sprintf("Date: %s", timeutil.ToIST(order.OrderDate).Format(timeutil.ShortLayout)), "", 1, "R", false, 0, "")
	pdf.CellFormat(120, 4, fmt.Sprintf("Ph: %s", shop.Phone), "", 1, "L", false, 0, "")
	pdf.Ln(4)
	pdf.SetDrawColor(180, 180, 180)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(4)

	// Bill To
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(95, 5, "BILL TO", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 5, customer.FullName, "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 5, fmt.Sprintf("Due Date: %s", timeutil.ToIST(order.DueDate).Format(timeutil.ShortLayout)), "", 1, "R", false, 0, "")
	pdf.CellFormat(95, 5, customer.Address, "", 1, "L", false, 0, "")
	pdf.CellFormat(95, 5, customer.Phone, "", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Items table
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(90, 7, "Item Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 7, "Rate", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range order.Items {
		amount := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		pdf.CellFormat(90, 7, item.GarmentType, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, currency.Format(item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, currency.Format(amount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(5)

	// Totals block, right aligned
	paid := order.Total.Sub(order.Balance)
	writeTotal := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.CellFormat(110, 6, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, value, "", 1, "R", false, 0, "")
	}
	writeTotal("Subtotal", currency.Format(order.Subtotal), false)
	writeTotal("Discount", "- "+currency.Format(order.Discount), false)
	writeTotal("Total", currency.Format(order.Total), true)
	writeTotal("Amount Paid", currency.Format(paid), false)
	writeTotal("Balance Due", currency.Format(order.Balance), true)

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(190, 5, "Thank you for your business!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// EmployeeStatementPDF renders the settlement statement: the open
// ledger window since the balance last returned to zero
func (s *InvoiceService) EmployeeStatementPDF(employeeID string) ([]byte, error) {
	view, err := s.Employees.Statement(employeeID)
	if err != nil {
		return nil, err
	}
	shop := s.Store.State().ShopInfo

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, shop.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, "Employee Payment Statement", "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 5, fmt.Sprintf("Generated: %s", timeutil.Now().Format(timeutil.DisplayLayout)), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Employee", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Name: %s", view.Employee.Name), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Role: %s", view.Employee.Role), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(30, 7, "Date", "1", 0, "L", true, 0, "")
	pdf.CellFormat(90, 7, "Particulars", "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 7, "Earned", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 7, "Paid", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, e := range view.Entries {
		credit, debit := "-", "-"
		if e.Credit.IsPositive() {
			credit = currency.Format(e.Credit)
		}
		if e.Debit.IsPositive() {
			debit = currency.Format(e.Debit)
		}
		pdf.CellFormat(30, 6, timeutil.ToIST(e.Date).Format(timeutil.ShortLayout), "1", 0, "L", false, 0, "")
		pdf.CellFormat(90, 6, e.Particulars, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, credit, "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, debit, "1", 1, "R", false, 0, "")
	}
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(120, 7, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, "Total Earned", "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, currency.Format(view.Summary.TotalEarned), "", 1, "R", false, 0, "")
	pdf.CellFormat(120, 7, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, "Total Paid", "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, currency.Format(view.Summary.TotalPaid), "", 1, "R", false, 0, "")
	pdf.CellFormat(120, 7, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, "Balance Due", "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, currency.Format(view.Summary.Balance), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render statement PDF: %w", err)
	}
	return buf.Bytes(), nil
}
