package validations

type CreateEventRequest struct {
	Title       string  `json:"title" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Time        string  `json:"time" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	Capacity    int     `json:"capacity" binding:"required,min=1"`
	Description string  `json:"description"`
	IsPaid      bool    `json:"isPaid"`
	Price       float64 `json:"price" binding:"min=0"`
}

type UpdateEventRequest struct {
	Title       *string  `json:"title"`
	Date        *string  `json:"date"`
	Time        *string  `json:"time"`
	Location    *string  `json:"location"`
	Capacity    *int     `json:"capacity" binding:"omitempty,min=1"`
	Status      *string  `json:"status" binding:"omitempty,oneof=upcoming ongoing completed"`
	IsPaid      *bool    `json:"isPaid"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	Description *string  `json:"description"`
}

type QuoteRequest struct {
	Attendees int `form:"attendees" binding:"required,min=1"`
}
