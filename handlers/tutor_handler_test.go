package handlers

import (
	"testing"

	"github.com/educify/educify-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geocodedTutor(subject string, lat, lng float64) models.Tutor {
	return models.Tutor{Subject: subject, LocationLat: &lat, LocationLng: &lng}
}

func TestNearbyTutors(t *testing.T) {
	t.Run("FiltersByRadius", func(t *testing.T) {
		tutors := []models.Tutor{
			geocodedTutor("Math", 0.005, 0), // ~0.56 km from the origin
			geocodedTutor("Physics", 1, 0),  // ~111 km from the origin
		}

		results := nearbyTutors(tutors, 0, 0, 1)
		require.Len(t, results, 1)
		assert.Equal(t, "Math", results[0].Subject)
		assert.InDelta(t, 0.556, results[0].Distance, 0.01)
	})

	t.Run("SkipsTutorsWithoutCoordinates", func(t *testing.T) {
		tutors := []models.Tutor{
			{Subject: "Chemistry"},
			geocodedTutor("Math", 0.001, 0),
		}

		results := nearbyTutors(tutors, 0, 0, 10)
		require.Len(t, results, 1)
		assert.Equal(t, "Math", results[0].Subject)
	})

	t.Run("OrdersByAscendingDistance", func(t *testing.T) {
		tutors := []models.Tutor{
			geocodedTutor("Far", 0.05, 0),
			geocodedTutor("Near", 0.01, 0),
			geocodedTutor("Mid", 0.03, 0),
		}

		results := nearbyTutors(tutors, 0, 0, 10)
		require.Len(t, results, 3)
		assert.Equal(t, "Near", results[0].Subject)
		assert.Equal(t, "Mid", results[1].Subject)
		assert.Equal(t, "Far", results[2].Subject)
	})

	t.Run("EmptyWhenNothingInRange", func(t *testing.T) {
		tutors := []models.Tutor{geocodedTutor("Math", 5, 5)}

		results := nearbyTutors(tutors, 0, 0, 1)
		assert.Empty(t, results)
	})
}
