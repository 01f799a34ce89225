package dto

type UserStatsResponse struct {
	TotalBookings     int64   `json:"total_bookings"`
	CompletedBookings int64   `json:"completed_bookings"`
	UpcomingBookings  int64   `json:"upcoming_bookings"`
	CancelledBookings int64   `json:"cancelled_bookings"`
	TotalSpent        float64 `json:"total_spent"`
	TotalPets         int     `json:"total_pets"`
}

type CaregiverStatsResponse struct {
	TotalBookings     int64   `json:"total_bookings"`
	CompletedBookings int64   `json:"completed_bookings"`
	PendingBookings   int64   `json:"pending_bookings"`
	Rating            float64 `json:"rating"`
	TotalReviews      int     `json:"total_reviews"`
	ResponseRate      float64 `json:"response_rate"`
	AcceptanceRate    float64 `json:"acceptance_rate"`
	TotalEarnings     float64 `json:"total_earnings"`
}

// EarningsResponse reports gross and net amounts after the platform
// commission.
type EarningsResponse struct {
	TotalEarnings  float64 `json:"total_earnings"`
	MonthEarnings  float64 `json:"month_earnings"`
	WeekEarnings   float64 `json:"week_earnings"`
	PlatformFee    float64 `json:"platform_fee"`
	NetEarnings    float64 `json:"net_earnings"`
	CommissionRate float64 `json:"commission_rate"`
}

type BookingStatsResponse struct {
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"by_status"`
	InProgress int64            `json:"in_progress"`
}

type UploadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}
