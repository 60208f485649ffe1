package entities

import "time"

// HistoricalSite is a catalog entry for a guided tour destination.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The catalog is read-only for this service; content is managed out-of-band.

type HistoricalSite struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	NameArabic   string    `json:"name_arabic"`
	Description  string    `json:"description"`
	Significance string    `json:"significance"`
	Duration     string    `json:"duration"`
	Distance     string    `json:"distance"`
	Image        string    `json:"image"`
	Price        float64   `json:"price"`
	Rating       float64   `json:"rating"`
	CreatedAt    time.Time `json:"created_at"`
}
