package seed

import "github.com/eduvault/eduvault/internal/app/models"

// Resources returns the fixed example catalog used when no persisted
// resource collection exists (or the persisted one cannot be read).
func Resources() []models.Resource {
	return []models.Resource{
		{
			ID:       "r1",
			Title:    "Algorithm PPT",
			Type:     models.TypePPTX,
			Size:     "20 MB",
			Uploader: "Sonam Pema",
			Grade:    "8",
			Rating:   3,
			Saved:    false,
			Comments: []string{"Good slides"},
			Created:  "2025-08-02",
		},
		{
			ID:       "r2",
			Title:    "Flowchart Guide",
			Type:     models.TypePDF,
			Size:     "3.4 MB",
			Uploader: "Thinley",
			Grade:    "9",
			Rating:   4,
			Saved:    true,
			Comments: []string{"Useful for lesson planning"},
			Created:  "2025-07-28",
		},
		{
			ID:       "r3",
			Title:    "Worksheet: Computer Ports",
			Type:     models.TypeDOCX,
			Size:     "0.4 MB",
			Uploader: "Kuzu",
			Grade:    "10",
			Rating:   5,
			Saved:    false,
			Comments: []string{},
			Created:  "2025-08-01",
		},
	}
}

// Notifications is the default (empty) notification collection.
func Notifications() []models.Notification {
	return []models.Notification{}
}

// Downloads is the default (empty) download history.
func Downloads() []string {
	return []string{}
}

// User is the default identity for a fresh store.
func User() models.User {
	return models.GuestUser()
}
