package submit

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
)

// MailSubmitter serializes the order as human-readable text and hands
// it off as a mailto URI. The mail client's own outcome is
// unobservable, so handoff always reports success.
type MailSubmitter struct {
	Recipient   string
	CompanyName string
}

func NewMailSubmitter(recipient, companyName string) *MailSubmitter {
	return &MailSubmitter{Recipient: recipient, CompanyName: companyName}
}

func (m *MailSubmitter) Submit(_ context.Context, order *domain.OrderRecord) (*Outcome, error) {
	if m.Recipient == "" {
		return nil, &ConfigurationError{Reason: "order recipient email is not configured"}
	}

	subject := fmt.Sprintf("New Order - %s", order.Customer.Name)
	body := RenderOrderText(order, m.CompanyName)

	return &Outcome{
		OrderID:   order.ID,
		Via:       ViaMail,
		MailtoURI: buildMailtoURI(m.Recipient, subject, body),
		Message:   "order handed off to the mail client",
	}, nil
}

// RenderOrderText formats the order the way it is sent by email:
// customer fields, itemized lines, total and date.
func RenderOrderText(order *domain.OrderRecord, companyName string) string {
	gst := order.Customer.GSTNo
	if gst == "" {
		gst = "Not Provided"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "New Order Received - %s\n\n", companyName)
	b.WriteString("Customer Details:\n")
	fmt.Fprintf(&b, "Name: %s\n", order.Customer.Name)
	fmt.Fprintf(&b, "Address: %s\n", order.Customer.Address)
	fmt.Fprintf(&b, "Pincode: %s\n", order.Customer.Pincode)
	fmt.Fprintf(&b, "Phone: %s\n", order.Customer.Phone)
	fmt.Fprintf(&b, "GST No: %s\n\n", gst)
	b.WriteString("Order Details:\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "• %s (%s) - Qty: %d - ₹%s\n", item.Name, item.Material, item.Quantity, item.TotalPrice)
	}
	fmt.Fprintf(&b, "\nTotal Amount: ₹%s\n\n", order.Summary.TotalAmount)
	fmt.Fprintf(&b, "Order Date: %s", order.Summary.OrderDate)
	return b.String()
}

func buildMailtoURI(recipient, subject, body string) string {
	q := url.Values{}
	q.Set("subject", subject)
	q.Set("body", body)
	// Mail clients do not decode '+' as space, so keep %20 escapes.
	return "mailto:" + recipient + "?" + strings.ReplaceAll(q.Encode(), "+", "%20")
}
