package catalog

import (
	"time"

	"github.com/dmitrijs2005/vital/internal/models"
)

func seedItems(now time.Time) []models.FoodItem {
	return []models.FoodItem{
		{
			ID:          "1",
			DonorName:   "Fresh Bakery",
			Contact:     "555-0101",
			Image:       "https://picsum.photos/seed/bread/400/300",
			Title:       "Sourdough Loaves",
			Description: "Freshly baked sourdough bread from this morning. Perfect condition.",
			Quantity:    "5 loaves",
			Location:    "123 Baker St, San Francisco, CA",
			Coords:      &models.Coords{Lat: 37.7749, Lng: -122.4194},
			Status:      models.ItemAvailable,
			CreatedAt:   now.Add(-1 * time.Hour).UnixMilli(),
		},
		{
			ID:          "2",
			DonorName:   "Corporate Catering",
			Contact:     "555-0102",
			Image:       "https://picsum.photos/seed/salad/400/300",
			Title:       "Mixed Green Salads",
			Description: "Individually packed mixed green salads with balsamic dressing on the side.",
			Quantity:    "12 boxes",
			Location:    "456 Tech Park, San Jose, CA",
			Coords:      &models.Coords{Lat: 37.3382, Lng: -121.8863},
			Status:      models.ItemAvailable,
			CreatedAt:   now.Add(-2 * time.Hour).UnixMilli(),
		},
	}
}
