package booking

import (
	"fmt"
	"strconv"
	"strings"

	"glamora/config"
	"glamora/models"
)

// BuildReceipt renders a plain-text receipt for a submitted booking. It is a
// side artifact, not part of the persisted record, but its totals must match
// the record exactly.
func BuildReceipt(booking *models.Booking) string {
	currency := config.AppConfig.Currency
	var b strings.Builder

	b.WriteString("SALON BOOKING CONFIRMATION\n")
	b.WriteString("===========================\n\n")

	fmt.Fprintf(&b, "Customer: %s\n", booking.Customer.Name)
	fmt.Fprintf(&b, "Email: %s\n", booking.Customer.Email)
	fmt.Fprintf(&b, "Phone: %s\n\n", booking.Customer.Phone)

	b.WriteString("Appointment Details:\n")
	b.WriteString("-------------------\n")
	fmt.Fprintf(&b, "Date: %s\n", booking.Appointment.DateTime.Format("Monday, January 2, 2006"))
	fmt.Fprintf(&b, "Time: %s\n", booking.Appointment.Time)
	stylist := "Any Available Stylist"
	if booking.Stylist != nil {
		stylist = booking.Stylist.Name
	}
	fmt.Fprintf(&b, "Stylist: %s\n\n", stylist)

	b.WriteString("Services:\n")
	b.WriteString("---------\n")
	for _, svc := range booking.Services {
		fmt.Fprintf(&b, "%s x%d - %s %s\n", svc.Name, svc.Quantity, currency, formatAmount(svc.LineTotal))
	}

	fmt.Fprintf(&b, "\nTotal Amount: %s %s\n", currency, formatAmount(booking.TotalAmount))
	method := "Paid via M-Pesa"
	if booking.Payment.Method == models.PaymentMethodAtSalon {
		method = "Pay at Salon"
	}
	fmt.Fprintf(&b, "Payment Method: %s\n\n", method)

	b.WriteString("Thank you for your booking!\n")
	b.WriteString("We look forward to seeing you.\n")
	return b.String()
}

// formatAmount renders a whole-unit amount with thousands separators.
func formatAmount(amount int) string {
	s := strconv.Itoa(amount)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}
