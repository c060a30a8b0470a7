package reviews

import (
	"context"
	"log"

	"github.com/StudioBellaCilios/studio-scheduler/internal/cache"
	"github.com/StudioBellaCilios/studio-scheduler/internal/integrations/places"
)

const cacheKey = "google_reviews"

// Summary é a resposta do endpoint de avaliações, no formato que o site
// consome.
type Summary struct {
	Reviews       []places.Review `json:"reviews"`
	AverageRating float64         `json:"averageRating"`
	TotalRatings  int             `json:"totalRatings"`
}

// PlaceDetails é a fronteira com o provedor de avaliações.
type PlaceDetails interface {
	Details(ctx context.Context, placeID string) (*places.Details, error)
}

type GetReviews struct {
	places  PlaceDetails
	cache   *cache.Client
	placeID string
}

func NewGetReviews(placeDetails PlaceDetails, cacheClient *cache.Client, placeID string) *GetReviews {
	return &GetReviews{
		places:  placeDetails,
		cache:   cacheClient,
		placeID: placeID,
	}
}

// Execute busca as avaliações passando pelo cache. Falha de cache nunca
// falha a requisição: cai para a API ao vivo.
func (uc *GetReviews) Execute(ctx context.Context) (*Summary, error) {
	var cached Summary
	if ok, err := uc.cache.GetJSON(ctx, cacheKey, &cached); err != nil {
		log.Println("reviews cache read failed:", err)
	} else if ok {
		return &cached, nil
	}

	details, err := uc.places.Details(ctx, uc.placeID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Reviews:       details.Reviews,
		AverageRating: details.Rating,
		TotalRatings:  details.UserRatingsTotal,
	}
	if summary.Reviews == nil {
		summary.Reviews = []places.Review{}
	}

	if err := uc.cache.SetJSON(ctx, cacheKey, summary); err != nil {
		log.Println("reviews cache write failed:", err)
	}

	return summary, nil
}
