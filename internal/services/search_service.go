package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"petbnb_backend/internal/cache"
	"petbnb_backend/internal/geo"
	"petbnb_backend/internal/logger"
	"petbnb_backend/internal/models"
	"petbnb_backend/internal/repositories"
	"petbnb_backend/internal/services/dto"
	"petbnb_backend/pkg/apperrors"
)

const (
	defaultSearchRadiusKm = 10.0
	maxSearchResults      = 50
	searchCacheTTL        = 60 * time.Second
)

type SearchService interface {
	SearchByLocation(ctx context.Context, req *dto.LocationSearchRequest) (*dto.LocationSearchResponse, error)
}

type SearchServiceImpl struct {
	caregiverRepo repositories.CaregiverRepository
	userRepo      repositories.UserRepository
	cache         *cache.Cache
}

func NewSearchService(
	caregiverRepo repositories.CaregiverRepository,
	userRepo repositories.UserRepository,
	searchCache *cache.Cache,
) SearchService {
	return &SearchServiceImpl{
		caregiverRepo: caregiverRepo,
		userRepo:      userRepo,
		cache:         searchCache,
	}
}

// SearchByLocation scans all active services, keeps those whose
// caregiver has coordinates within the radius, applies the optional
// filters and returns the nearest matches first.
func (s *SearchServiceImpl) SearchByLocation(ctx context.Context, req *dto.LocationSearchRequest) (*dto.LocationSearchResponse, error) {
	radius := req.RadiusKm
	if radius <= 0 {
		radius = defaultSearchRadiusKm
	}

	cacheKey := searchCacheKey(req, radius)
	var cached dto.LocationSearchResponse
	if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	services, err := s.caregiverRepo.FindActiveServices()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	caregiverIDs := make([]string, 0, len(services))
	seen := make(map[string]bool)
	for i := range services {
		id := services[i].CaregiverID
		if !seen[id] {
			seen[id] = true
			caregiverIDs = append(caregiverIDs, id)
		}
	}

	caregivers, err := s.userRepo.FindByIDs(caregiverIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	byID := make(map[string]*models.User, len(caregivers))
	for i := range caregivers {
		byID[caregivers[i].ID] = &caregivers[i]
	}

	results := filterAndRank(services, byID, req, radius)

	resp := &dto.LocationSearchResponse{Results: results, Count: len(results)}

	if err := s.cache.SetJSON(ctx, cacheKey, resp, searchCacheTTL); err != nil {
		logger.CtxWarn(ctx, "failed to cache search results", "error", err)
	}

	return resp, nil
}

func filterAndRank(services []models.CaregiverService, caregivers map[string]*models.User, req *dto.LocationSearchRequest, radius float64) []dto.SearchResult {
	results := make([]dto.SearchResult, 0)

	for i := range services {
		service := &services[i]

		caregiver, ok := caregivers[service.CaregiverID]
		if !ok || !caregiver.HasCoordinates() {
			continue
		}

		distance := geo.Distance(req.Latitude, req.Longitude, *caregiver.Latitude, *caregiver.Longitude)
		if distance > radius {
			continue
		}

		if req.ServiceType != nil && service.ServiceType != *req.ServiceType {
			continue
		}
		if req.MaxPrice != nil && service.BasePrice > *req.MaxPrice {
			continue
		}

		rating := 0.0
		totalReviews := 0
		if caregiver.CaregiverProfile != nil {
			rating = caregiver.CaregiverProfile.Rating
			totalReviews = caregiver.CaregiverProfile.TotalReviews
		}
		if req.MinRating != nil && rating < *req.MinRating {
			continue
		}

		results = append(results, dto.SearchResult{
			ServiceID:       service.ID,
			CaregiverID:     caregiver.ID,
			CaregiverName:   caregiver.FullName(),
			ProfileImageURL: caregiver.ProfileImageURL,
			ServiceType:     service.ServiceType,
			Title:           service.Title,
			BasePrice:       service.BasePrice,
			Rating:          rating,
			TotalReviews:    totalReviews,
			DistanceKm:      distance,
			Latitude:        *caregiver.Latitude,
			Longitude:       *caregiver.Longitude,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})
	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}

	return results
}

func searchCacheKey(req *dto.LocationSearchRequest, radius float64) string {
	serviceType := ""
	if req.ServiceType != nil {
		serviceType = string(*req.ServiceType)
	}
	maxPrice := -1.0
	if req.MaxPrice != nil {
		maxPrice = *req.MaxPrice
	}
	minRating := -1.0
	if req.MinRating != nil {
		minRating = *req.MinRating
	}
	return fmt.Sprintf("search:%.4f:%.4f:%.1f:%s:%.2f:%.1f",
		req.Latitude, req.Longitude, radius, serviceType, maxPrice, minRating)
}
