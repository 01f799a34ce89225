package services

import (
	"testing"

	"petbnb_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestMeanRating(t *testing.T) {
	ratings := func(values ...int) []models.Review {
		reviews := make([]models.Review, len(values))
		for i, v := range values {
			reviews[i].Rating = v
		}
		return reviews
	}

	assert.Equal(t, 0.0, meanRating(nil))
	assert.Equal(t, 5.0, meanRating(ratings(5)))
	assert.Equal(t, 4.5, meanRating(ratings(4, 5)))

	// 4+4+5 = 13/3 = 4.333..., rounded to one decimal.
	assert.Equal(t, 4.3, meanRating(ratings(4, 4, 5)))

	// 3+4 = 3.5 stays at one decimal.
	assert.Equal(t, 3.5, meanRating(ratings(3, 4)))

	// 1+2+5 = 2.666... rounds up.
	assert.Equal(t, 2.7, meanRating(ratings(1, 2, 5)))
}
