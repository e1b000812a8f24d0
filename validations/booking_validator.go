package validations

type CreateBookingRequest struct {
	EventID             string  `json:"eventId" binding:"required"`
	Attendees           int     `json:"attendees" binding:"required,min=1"`
	SpecialRequirements string  `json:"specialRequirements"`
	PaymentMethod       string  `json:"paymentMethod"`
	// Amount is what the client's booking dialog computed. It is accepted
	// for interface compatibility but the server requotes and charges its
	// own figure.
	Amount float64 `json:"amount" binding:"min=0"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}
