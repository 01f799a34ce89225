package services

import (
	"fmt"
	"testing"

	"petbnb_backend/internal/models"
	"petbnb_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchCaregiver(id string, lat, lng, rating float64) *models.User {
	user := &models.User{
		Role:      models.UserRoleCaregiver,
		FirstName: "Care",
		LastName:  "Giver",
		Latitude:  &lat,
		Longitude: &lng,
		CaregiverProfile: &models.CaregiverProfile{
			Rating:       rating,
			TotalReviews: 5,
		},
	}
	user.ID = id
	return user
}

func searchService(id, caregiverID string, serviceType models.ServiceType, price float64) models.CaregiverService {
	service := models.CaregiverService{
		CaregiverID: caregiverID,
		ServiceType: serviceType,
		Title:       "Service " + id,
		BasePrice:   price,
		IsActive:    true,
	}
	service.ID = id
	return service
}

func TestFilterAndRankSortsByDistance(t *testing.T) {
	// Searcher at the origin point, caregivers progressively north.
	req := &dto.LocationSearchRequest{Latitude: 1.30, Longitude: 103.80}

	caregivers := map[string]*models.User{
		"far":  searchCaregiver("far", 1.35, 103.80, 4.0),
		"near": searchCaregiver("near", 1.31, 103.80, 4.0),
		"mid":  searchCaregiver("mid", 1.33, 103.80, 4.0),
	}
	services := []models.CaregiverService{
		searchService("s-far", "far", models.ServiceTypeDogWalking, 25),
		searchService("s-near", "near", models.ServiceTypeDogWalking, 25),
		searchService("s-mid", "mid", models.ServiceTypeDogWalking, 25),
	}

	results := filterAndRank(services, caregivers, req, 20)

	require.Len(t, results, 3)
	assert.Equal(t, "near", results[0].CaregiverID)
	assert.Equal(t, "mid", results[1].CaregiverID)
	assert.Equal(t, "far", results[2].CaregiverID)
	assert.Less(t, results[0].DistanceKm, results[1].DistanceKm)
}

func TestFilterAndRankRadius(t *testing.T) {
	req := &dto.LocationSearchRequest{Latitude: 1.30, Longitude: 103.80}

	caregivers := map[string]*models.User{
		"near": searchCaregiver("near", 1.31, 103.80, 0),
		// Roughly 55 km north.
		"distant": searchCaregiver("distant", 1.80, 103.80, 0),
	}
	services := []models.CaregiverService{
		searchService("s1", "near", models.ServiceTypeDogWalking, 25),
		searchService("s2", "distant", models.ServiceTypeDogWalking, 25),
	}

	results := filterAndRank(services, caregivers, req, 10)
	require.Len(t, results, 1)
	assert.Equal(t, "near", results[0].CaregiverID)
}

func TestFilterAndRankFilters(t *testing.T) {
	req := &dto.LocationSearchRequest{Latitude: 1.30, Longitude: 103.80}

	caregivers := map[string]*models.User{
		"a": searchCaregiver("a", 1.31, 103.80, 4.8),
		"b": searchCaregiver("b", 1.31, 103.81, 3.0),
	}
	services := []models.CaregiverService{
		searchService("s-a", "a", models.ServiceTypeDogWalking, 25),
		searchService("s-b", "b", models.ServiceTypePetBoarding, 80),
	}

	walkType := models.ServiceTypeDogWalking
	results := filterAndRank(services, caregivers, &dto.LocationSearchRequest{
		Latitude: req.Latitude, Longitude: req.Longitude, ServiceType: &walkType,
	}, 20)
	require.Len(t, results, 1)
	assert.Equal(t, "s-a", results[0].ServiceID)

	maxPrice := 50.0
	results = filterAndRank(services, caregivers, &dto.LocationSearchRequest{
		Latitude: req.Latitude, Longitude: req.Longitude, MaxPrice: &maxPrice,
	}, 20)
	require.Len(t, results, 1)
	assert.Equal(t, "s-a", results[0].ServiceID)

	minRating := 4.0
	results = filterAndRank(services, caregivers, &dto.LocationSearchRequest{
		Latitude: req.Latitude, Longitude: req.Longitude, MinRating: &minRating,
	}, 20)
	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].CaregiverID)
	assert.InDelta(t, 4.8, results[0].Rating, 0.001)
}

func TestFilterAndRankSkipsCaregiversWithoutCoordinates(t *testing.T) {
	req := &dto.LocationSearchRequest{Latitude: 1.30, Longitude: 103.80}

	noCoords := &models.User{Role: models.UserRoleCaregiver}
	noCoords.ID = "nc"

	caregivers := map[string]*models.User{"nc": noCoords}
	services := []models.CaregiverService{
		searchService("s1", "nc", models.ServiceTypeDogWalking, 25),
		searchService("s2", "unknown", models.ServiceTypeDogWalking, 25),
	}

	results := filterAndRank(services, caregivers, req, 50)
	assert.Empty(t, results)
}

func TestFilterAndRankCapsResults(t *testing.T) {
	req := &dto.LocationSearchRequest{Latitude: 1.30, Longitude: 103.80}

	caregivers := make(map[string]*models.User)
	var services []models.CaregiverService
	for i := 0; i < maxSearchResults+10; i++ {
		id := fmt.Sprintf("c%d", i)
		caregivers[id] = searchCaregiver(id, 1.30, 103.80, 4.0)
		services = append(services, searchService("s-"+id, id, models.ServiceTypeDogWalking, 25))
	}

	results := filterAndRank(services, caregivers, req, 50)
	assert.Len(t, results, maxSearchResults)
}

func TestSearchCacheKeyIncludesFilters(t *testing.T) {
	base := &dto.LocationSearchRequest{Latitude: 1.3, Longitude: 103.8}

	plain := searchCacheKey(base, 10)

	maxPrice := 50.0
	withPrice := searchCacheKey(&dto.LocationSearchRequest{
		Latitude: 1.3, Longitude: 103.8, MaxPrice: &maxPrice,
	}, 10)

	assert.NotEqual(t, plain, withPrice)
	assert.Equal(t, plain, searchCacheKey(base, 10))
}
