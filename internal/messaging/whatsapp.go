// Package messaging builds the outbound order hand-off: a human-readable
// order summary and a wa.me link carrying it. Delivery of the message is the
// customer's browser's problem; nothing here confirms it.
package messaging

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tayaudrey222/yumstation/internal/models"
)

const waBaseURL = "https://wa.me/"

type WhatsApp struct {
	businessPhone string
}

func NewWhatsApp(businessPhone string) *WhatsApp {
	return &WhatsApp{businessPhone: businessPhone}
}

// Summary renders the order as the text message the customer sends.
// reference is the display-only order reference shown to the customer; it is
// never the persisted identity.
func (w *WhatsApp) Summary(order models.Order, reference string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hello Yum Station! I would like to place an order (%s):\n\n", reference)

	for _, item := range order.Items {
		subtotal := item.UnitPrice * int64(item.Quantity)
		fmt.Fprintf(&b, "- %dx %s - N%s\n", item.Quantity, item.Name, group(subtotal))
	}

	fmt.Fprintf(&b, "\n*TOTAL: N%s*", group(order.TotalAmount))
	b.WriteString("\n\n----------------")
	fmt.Fprintf(&b, "\n*Customer:* %s", order.CustomerName)
	fmt.Fprintf(&b, "\n*Order Type:* %s", strings.ToUpper(order.OrderType))
	fmt.Fprintf(&b, "\n*Phone:* %s", order.Phone)

	if order.OrderType == models.OrderTypeDelivery {
		fmt.Fprintf(&b, "\n*Address:* %s", order.Address)
	}

	return b.String()
}

// Link returns the wa.me URL with the summary as the prefilled text.
func (w *WhatsApp) Link(order models.Order, reference string) string {
	return waBaseURL + w.businessPhone + "?text=" + url.QueryEscape(w.Summary(order, reference))
}

// group formats an amount with thousands separators, matching the storefront
// display (2500 -> "2,500").
func group(amount int64) string {
	s := fmt.Sprintf("%d", amount)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
