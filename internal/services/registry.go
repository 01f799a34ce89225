package services

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService      AuthService
	PetService       PetService
	CaregiverService CaregiverService
	BookingService   BookingService
	SearchService    SearchService
	ReviewService    ReviewService
	MessageService   MessageService
	PaymentService   PaymentService
	UploadService    UploadService
	StatsService     StatsService
}
