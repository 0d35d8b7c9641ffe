package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cowebsLB/mounifull/models"
)

// WhatsApp deep links break on very long URLs, so the message body is
// capped: anything over maxMessageRunes is cut back to truncatedRunes of
// content plus a marker instead of failing the handoff.
const (
	maxMessageRunes = 2000
	truncatedRunes  = 1500
	truncationMark  = "\n... (order truncated)"
)

// BuildOrderMessage formats the order summary sent to the shop's WhatsApp.
func BuildOrderMessage(form OrderForm, items []models.CartItem, subtotal, fee, total float64) string {
	var b strings.Builder

	b.WriteString("🛒 *New Order from Mounifull Website*\n\n")
	b.WriteString("*Customer Information:*\n")
	fmt.Fprintf(&b, "Name: %s\n", orNotProvided(form.FullName))
	fmt.Fprintf(&b, "Phone: %s\n", orNotProvided(form.Phone))
	fmt.Fprintf(&b, "Address: %s\n\n", orNotProvided(form.Address))

	b.WriteString("*Order Items:*\n")
	for i, it := range items {
		fmt.Fprintf(&b, "%d. %s x%d - $%.2f\n", i+1, it.Name, it.Quantity, it.Subtotal())
	}

	fmt.Fprintf(&b, "\nSubtotal: $%.2f\n", subtotal)
	if fee == 0 {
		b.WriteString("Shipping: Free\n")
	} else {
		fmt.Fprintf(&b, "Shipping: $%.2f\n", fee)
	}
	fmt.Fprintf(&b, "*Total: $%.2f*\n\n", total)
	b.WriteString("Please confirm this order. Thank you! 🙏")

	return Truncate(b.String())
}

// Truncate enforces the message length cap.
func Truncate(message string) string {
	runes := []rune(message)
	if len(runes) <= maxMessageRunes {
		return message
	}
	return string(runes[:truncatedRunes]) + truncationMark
}

// OrderLink builds the wa.me deep link with the pre-filled message.
func OrderLink(number, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + number + "?text=" + encoded
}

func orNotProvided(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Not provided"
	}
	return v
}
