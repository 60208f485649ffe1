package response

import (
	"time"

	"madinah_tours/internal/domain/entities"
)

type SiteResponse struct {
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

func FromSite(s entities.HistoricalSite) SiteResponse {
	return SiteResponse{
		ID:           s.ID,
		Name:         s.Name,
		NameArabic:   s.NameArabic,
		Description:  s.Description,
		Significance: s.Significance,
		Duration:     s.Duration,
		Distance:     s.Distance,
		Image:        s.Image,
		Price:        s.Price,
		Rating:       s.Rating,
		CreatedAt:    s.CreatedAt,
	}
}

func FromSites(sites []entities.HistoricalSite) []SiteResponse {
	out := make([]SiteResponse, 0, len(sites))
	for _, s := range sites {
		out = append(out, FromSite(s))
	}
	return out
}
