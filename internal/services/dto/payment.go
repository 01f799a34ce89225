package dto

type CreateIntentRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
}

type CreateIntentResponse struct {
	ClientSecret    string  `json:"client_secret"`
	PaymentIntentID string  `json:"payment_intent_id"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
}
