package messaging

import (
	"strings"
	"testing"

	"github.com/tayaudrey222/yumstation/internal/models"

	"github.com/stretchr/testify/assert"
)

func deliveryOrder() models.Order {
	return models.Order{
		ID:           "o-1",
		CustomerName: "Ada",
		Phone:        "08012345678",
		Address:      "12 Allen Avenue",
		OrderType:    models.OrderTypeDelivery,
		TotalAmount:  5300,
		Items: []models.OrderItem{
			{Name: "Jollof Rice (Jumbo)", Quantity: 2, UnitPrice: 2400},
			{Name: "Soda (Coke/Fanta)", Quantity: 1, UnitPrice: 500},
		},
	}
}

func TestSummaryContainsLinesAndTotals(t *testing.T) {
	w := NewWhatsApp("2348061781845")
	msg := w.Summary(deliveryOrder(), "#AB12CD")

	assert.Contains(t, msg, "(#AB12CD)")
	assert.Contains(t, msg, "2x Jollof Rice (Jumbo) - N4,800")
	assert.Contains(t, msg, "1x Soda (Coke/Fanta) - N500")
	assert.Contains(t, msg, "*TOTAL: N5,300*")
	assert.Contains(t, msg, "*Order Type:* DELIVERY")
	assert.Contains(t, msg, "*Address:* 12 Allen Avenue")
}

func TestSummaryOmitsAddressForPickup(t *testing.T) {
	order := deliveryOrder()
	order.OrderType = models.OrderTypePickup
	order.Address = ""

	msg := NewWhatsApp("2348061781845").Summary(order, "#X")
	assert.NotContains(t, msg, "*Address:*")
	assert.Contains(t, msg, "*Order Type:* PICKUP")
}

func TestLinkIsEscapedWaMeURL(t *testing.T) {
	link := NewWhatsApp("2348061781845").Link(deliveryOrder(), "#AB12CD")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/2348061781845?text="))
	assert.NotContains(t, link, " ")
	assert.NotContains(t, link, "\n")
}

func TestGrouping(t *testing.T) {
	assert.Equal(t, "0", group(0))
	assert.Equal(t, "300", group(300))
	assert.Equal(t, "2,500", group(2500))
	assert.Equal(t, "1,234,567", group(1234567))
}
