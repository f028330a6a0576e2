package whatsapp

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"tailor-backend/internal/models"
)

func TestLinkStripsFormattingAndPrefixesCountryCode(t *testing.T) {
	link := Link("98765-43210", "Hello there")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="))
	assert.Contains(t, link, "Hello+there")
}

func TestOrderMessage(t *testing.T) {
	shop := models.ShopInfo{Name: "Deepak Tailors"}
	customer := models.Customer{FullName: "Asha Patil"}
	order := models.Order{
		OrderNumber: "DT-20260315-ab12",
		Total:       decimal.NewFromInt(900),
		Balance:     decimal.NewFromInt(600),
		DueDate:     time.Date(2026, time.March, 22, 0, 0, 0, 0, time.UTC),
	}

	msg := OrderMessage(shop, customer, order)

	assert.Contains(t, msg, "Hello Asha Patil,")
	assert.Contains(t, msg, "Deepak Tailors")
	assert.Contains(t, msg, "*Order No:* DT-20260315-ab12")
	assert.Contains(t, msg, "*Total Amount:* Rs.900.00")
	assert.Contains(t, msg, "*Amount Paid:* Rs.300.00")
	assert.Contains(t, msg, "*Balance Due:* Rs.600.00")
	assert.Contains(t, msg, "*Due Date:* 22/03/2026")
}
