package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/StudioBellaCilios/studio-scheduler/internal/httperr"
	ucReviews "github.com/StudioBellaCilios/studio-scheduler/internal/usecase/reviews"
)

type ReviewsHandler struct {
	reviews *ucReviews.GetReviews
}

func NewReviewsHandler(reviews *ucReviews.GetReviews) *ReviewsHandler {
	return &ReviewsHandler{reviews: reviews}
}

func (h *ReviewsHandler) GetReviews(c *gin.Context) {
	summary, err := h.reviews.Execute(c.Request.Context())
	if err != nil {
		log.Println("erro ao buscar avaliações:", err)
		httperr.Internal(c, "Erro ao buscar avaliações do Google")
		return
	}

	c.JSON(http.StatusOK, summary)
}
