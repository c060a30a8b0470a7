package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/StudioBellaCilios/studio-scheduler/internal/audit"
	"github.com/StudioBellaCilios/studio-scheduler/internal/cache"
	"github.com/StudioBellaCilios/studio-scheduler/internal/config"
	domain "github.com/StudioBellaCilios/studio-scheduler/internal/domain/booking"
	"github.com/StudioBellaCilios/studio-scheduler/internal/handlers"
	"github.com/StudioBellaCilios/studio-scheduler/internal/integrations/googlecalendar"
	"github.com/StudioBellaCilios/studio-scheduler/internal/integrations/places"
	"github.com/StudioBellaCilios/studio-scheduler/internal/integrations/recaptcha"
	"github.com/StudioBellaCilios/studio-scheduler/internal/metrics"
	ucBooking "github.com/StudioBellaCilios/studio-scheduler/internal/usecase/booking"
	ucReviews "github.com/StudioBellaCilios/studio-scheduler/internal/usecase/reviews"
)

func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	calendarClient *googlecalendar.Client,
	recaptchaClient *recaptcha.Client,
	placesClient *places.Client,
	cacheClient *cache.Client,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	catalog := domain.DefaultCatalog()
	generator := domain.NewGenerator(
		catalog,
		domain.DefaultHours(),
		cfg.StrictClosingBoundary,
	)

	auditLogger := audit.New(nil)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailableSlots(
		calendarClient,
		generator,
		cfg.GoogleCalendarID,
	)

	createBookingUC := ucBooking.NewCreateBooking(
		calendarClient,
		recaptchaClient,
		catalog,
		auditDispatcher,
		cfg.GoogleCalendarID,
	)

	reviewsUC := ucReviews.NewGetReviews(
		placesClient,
		cacheClient,
		cfg.GooglePlaceID,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(availabilityUC, createBookingUC)
	reviewsHandler := handlers.NewReviewsHandler(reviewsUC)
	catalogHandler := handlers.NewCatalogHandler(catalog)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/services", catalogHandler.ListServices)
		api.GET("/available-slots", bookingHandler.GetAvailableSlots)
		api.POST("/create-booking", bookingHandler.CreateBooking)
		api.GET("/google-reviews", reviewsHandler.GetReviews)
	}

	// ======================================================
	// 📈 METRICS
	// ======================================================
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
}
