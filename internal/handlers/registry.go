package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler       *AuthHandler
	VerifyPageHandler *VerifyPageHandler
	PetHandler        *PetHandler
	CaregiverHandler  *CaregiverHandler
	BookingHandler    *BookingHandler
	SearchHandler     *SearchHandler
	ReviewHandler     *ReviewHandler
	MessageHandler    *MessageHandler
	PaymentHandler    *PaymentHandler
	UploadHandler     *UploadHandler
	StatsHandler      *StatsHandler
}
