package models

// ServiceLineItem is one selected service plus its quantity inside the cart.
type ServiceLineItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Duration int    `json:"duration"`
	Quantity int    `json:"quantity"`
}

// CustomerInfo holds the contact details entered during a booking flow.
type CustomerInfo struct {
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone" json:"phone"`
	Email string `bson:"email" json:"email"`
	Notes string `bson:"notes" json:"notes"`
}

// BookingSession holds everything a customer accumulates before submission:
// the service cart, the stylist choice, the appointment date and time, the
// contact details and the payment method. Sessions live in Redis under their
// SessionID and are deleted when the flow completes or the user clears them.
type BookingSession struct {
	SessionID     string            `json:"sessionId"`
	Services      []ServiceLineItem `json:"services"`
	Stylist       *StylistSelection `json:"stylist,omitempty"`
	Date          string            `json:"date,omitempty"` // YYYY-MM-DD
	Time          string            `json:"time,omitempty"` // HH:MM, 24-hour
	Customer      CustomerInfo      `json:"customer"`
	PaymentMethod string            `json:"paymentMethod"`
}

// AddService puts a service into the cart. Adding a service that is already
// present increments its quantity by one; otherwise it is inserted with
// quantity 1. Cart ids stay unique.
func (s *BookingSession) AddService(item ServiceLineItem) {
	for i := range s.Services {
		if s.Services[i].ID == item.ID {
			s.Services[i].Quantity++
			return
		}
	}
	item.Quantity = 1
	s.Services = append(s.Services, item)
}

// RemoveService deletes the matching line item. Removing an absent id is a
// no-op, not an error.
func (s *BookingSession) RemoveService(serviceID string) {
	for i := range s.Services {
		if s.Services[i].ID == serviceID {
			s.Services = append(s.Services[:i], s.Services[i+1:]...)
			return
		}
	}
}

// UpdateQuantity replaces a line item's quantity. A quantity of zero or less
// removes the item entirely.
func (s *BookingSession) UpdateQuantity(serviceID string, quantity int) {
	if quantity <= 0 {
		s.RemoveService(serviceID)
		return
	}
	for i := range s.Services {
		if s.Services[i].ID == serviceID {
			s.Services[i].Quantity = quantity
			return
		}
	}
}

// TotalPrice recomputes the cart total from current contents.
func (s *BookingSession) TotalPrice() int {
	total := 0
	for _, item := range s.Services {
		total += item.Price * item.Quantity
	}
	return total
}

// TotalDuration recomputes the combined duration in minutes from current contents.
func (s *BookingSession) TotalDuration() int {
	total := 0
	for _, item := range s.Services {
		total += item.Duration * item.Quantity
	}
	return total
}
