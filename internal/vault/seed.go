package vault

import (
	"time"

	"github.com/dmitrijs2005/memoryvault/internal/models"
)

func ts(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func tsPtr(t time.Time) *time.Time { return &t }

// SeedCapsules returns the sample records written on first run so the
// gallery is never empty. Content matches the original release.
func SeedCapsules() []models.Capsule {
	return []models.Capsule{
		{
			ID:      "1",
			Title:   "Summer Vacation 2024",
			Message: "What an amazing trip to the mountains! The sunrise from the peak was absolutely breathtaking. I hope when I read this next year, I remember how peaceful and happy I felt in that moment.",
			Media: []models.MediaItem{
				{ID: "m1", Kind: models.MediaKindPhoto, URL: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400", Name: "mountain-sunrise.jpg", Size: 2048000},
				{ID: "m2", Kind: models.MediaKindPhoto, URL: "https://images.unsplash.com/photo-1469474968028-56623f02e42e?w=400", Name: "lake-view.jpg", Size: 1856000},
			},
			Photos: []string{
				"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400",
				"https://images.unsplash.com/photo-1469474968028-56623f02e42e?w=400",
			},
			CreatedAt:  ts(2024, time.July, 15, 10, 30),
			UnlockDate: tsPtr(ts(2025, time.July, 15, 10, 30)),
			Location:   "Rocky Mountain National Park",
			UnlockLocation: &models.UnlockLocation{
				Latitude:  40.3428,
				Longitude: -105.6836,
				Name:      "Rocky Mountain National Park",
			},
			IsUnlocked: false,
			Theme:      models.ThemeTravel,
		},
		{
			ID:      "2",
			Title:   "My 25th Birthday",
			Message: "Today I turned 25! Surrounded by friends and family, I feel so grateful for all the love in my life. This year I want to focus on personal growth and new adventures.",
			Media: []models.MediaItem{
				{ID: "m3", Kind: models.MediaKindPhoto, URL: "https://images.unsplash.com/photo-1464207687429-7505649dae38?w=400", Name: "birthday-cake.jpg", Size: 1920000},
			},
			Photos:     []string{"https://images.unsplash.com/photo-1464207687429-7505649dae38?w=400"},
			CreatedAt:  ts(2024, time.March, 20, 18, 0),
			UnlockDate: tsPtr(ts(2025, time.March, 20, 18, 0)),
			Location:   "Home Sweet Home",
			IsUnlocked: false,
			Theme:      models.ThemeBirthday,
		},
		{
			ID:      "3",
			Title:   "First Day at New Job",
			Message: "Starting my dream job today! I am nervous but excited about this new chapter. I hope future me is proud of taking this leap of faith.",
			Media: []models.MediaItem{
				{ID: "m4", Kind: models.MediaKindPhoto, URL: "https://images.unsplash.com/photo-1497032628192-86f99bcd76bc?w=400", Name: "office-building.jpg", Size: 2240000},
			},
			Photos:     []string{"https://images.unsplash.com/photo-1497032628192-86f99bcd76bc?w=400"},
			CreatedAt:  ts(2024, time.January, 15, 9, 0),
			UnlockDate: tsPtr(ts(2024, time.December, 15, 9, 0)),
			Location:   "Downtown Office",
			IsUnlocked: true,
			UnlockedAt: tsPtr(ts(2024, time.December, 15, 9, 0)),
			Theme:      models.ThemeDefault,
		},
		{
			ID:      "4",
			Title:   "College Graduation",
			Message: "I did it! Four years of hard work finally paid off. Thank you to everyone who supported me along the way. The future feels bright and full of possibilities!",
			Media: []models.MediaItem{
				{ID: "m5", Kind: models.MediaKindPhoto, URL: "https://images.unsplash.com/photo-1523050854058-8df90110c9f1?w=400", Name: "graduation-cap.jpg", Size: 1680000},
			},
			Photos:     []string{"https://images.unsplash.com/photo-1523050854058-8df90110c9f1?w=400"},
			CreatedAt:  ts(2023, time.May, 20, 14, 0),
			UnlockDate: tsPtr(ts(2024, time.May, 20, 14, 0)),
			Location:   "University Campus",
			IsUnlocked: true,
			UnlockedAt: tsPtr(ts(2024, time.May, 20, 14, 0)),
			Theme:      models.ThemeGraduation,
		},
		{
			ID:      "5",
			Title:   "Weekend Getaway",
			Message: "Sometimes you need to escape the city and reconnect with nature. This little cabin by the lake is exactly what my soul needed.",
			Media: []models.MediaItem{
				{ID: "m6", Kind: models.MediaKindPhoto, URL: "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=400", Name: "forest-path.jpg", Size: 2100000},
				{ID: "m7", Kind: models.MediaKindPhoto, URL: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400", Name: "cabin-lake.jpg", Size: 1950000},
			},
			Photos: []string{
				"https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=400",
				"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400",
			},
			CreatedAt:  ts(2024, time.September, 10, 16, 30),
			UnlockDate: tsPtr(ts(2025, time.January, 15, 16, 30)),
			Location:   "Lake Cabin Retreat",
			IsUnlocked: false,
			Theme:      models.ThemeTravel,
		},
	}
}
