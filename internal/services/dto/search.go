package dto

import "petbnb_backend/internal/models"

type LocationSearchRequest struct {
	Latitude    float64             `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude   float64             `json:"longitude" validate:"required,min=-180,max=180"`
	RadiusKm    float64             `json:"radius_km" validate:"min=0"`
	ServiceType *models.ServiceType `json:"service_type" validate:"omitempty,is-service-type"`
	MaxPrice    *float64            `json:"max_price" validate:"omitempty,gt=0"`
	MinRating   *float64            `json:"min_rating" validate:"omitempty,min=0,max=5"`
}

// SearchResult is one caregiver service within the search radius.
type SearchResult struct {
	ServiceID       string             `json:"service_id"`
	CaregiverID     string             `json:"caregiver_id"`
	CaregiverName   string             `json:"caregiver_name"`
	ProfileImageURL string             `json:"profile_image_url,omitempty"`
	ServiceType     models.ServiceType `json:"service_type"`
	Title           string             `json:"title"`
	BasePrice       float64            `json:"base_price"`
	Rating          float64            `json:"rating"`
	TotalReviews    int                `json:"total_reviews"`
	DistanceKm      float64            `json:"distance_km"`
	Latitude        float64            `json:"latitude"`
	Longitude       float64            `json:"longitude"`
}

type LocationSearchResponse struct {
	Results []SearchResult `json:"results"`
	Count   int            `json:"count"`
}
