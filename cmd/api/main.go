package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/StudioBellaCilios/studio-scheduler/internal/cache"
	"github.com/StudioBellaCilios/studio-scheduler/internal/config"
	"github.com/StudioBellaCilios/studio-scheduler/internal/integrations/googlecalendar"
	"github.com/StudioBellaCilios/studio-scheduler/internal/integrations/places"
	"github.com/StudioBellaCilios/studio-scheduler/internal/integrations/recaptcha"
	"github.com/StudioBellaCilios/studio-scheduler/internal/metrics"
	"github.com/StudioBellaCilios/studio-scheduler/internal/middleware"
	"github.com/StudioBellaCilios/studio-scheduler/internal/routes"
	"github.com/StudioBellaCilios/studio-scheduler/internal/timezone"
)

func main() {

	cfg := config.Load()

	serviceAccount, err := googlecalendar.LoadServiceAccount(cfg.GoogleServiceAccountKey)
	if err != nil {
		log.Fatalf("failed to load service account: %v", err)
	}

	tokens := googlecalendar.NewServiceAccountTokenSource(serviceAccount, cfg.HTTPClientTimeout)
	calendarClient := googlecalendar.NewClient(tokens, "", cfg.HTTPClientTimeout)
	recaptchaClient := recaptcha.NewClient(cfg.RecaptchaSecretKey, "", cfg.HTTPClientTimeout)
	placesClient := places.NewClient(cfg.GooglePlaceKey, "", cfg.HTTPClientTimeout)
	cacheClient := cache.New(cfg.RedisAddr, cfg.ReviewsCacheTTL)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg.FrontendURL))
	r.Use(metrics.New("studio-scheduler").Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": timezone.Now().Format(time.RFC3339),
		})
	})

	routes.RegisterRoutes(r, cfg, calendarClient, recaptchaClient, placesClient, cacheClient)

	log.Printf("Server running on %s", cfg.Addr())
	log.Printf("Google Calendar ID: %s", cfg.GoogleCalendarID)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
