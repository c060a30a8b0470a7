package routes_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StudioBellaCilios/studio-scheduler/internal/cache"
	"github.com/StudioBellaCilios/studio-scheduler/internal/config"
	"github.com/StudioBellaCilios/studio-scheduler/internal/integrations/googlecalendar"
	"github.com/StudioBellaCilios/studio-scheduler/internal/integrations/places"
	"github.com/StudioBellaCilios/studio-scheduler/internal/integrations/recaptcha"
	"github.com/StudioBellaCilios/studio-scheduler/internal/routes"
)

type staticTokens struct{}

func (staticTokens) Token(context.Context) (string, error) { return "test-token", nil }

type upstream struct {
	calendar  *httptest.Server
	recaptcha *httptest.Server
	places    *httptest.Server

	insertedEvents []googlecalendar.Event
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()
	u := &upstream{}

	mux := http.NewServeMux()
	mux.HandleFunc("/freeBusy", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"calendars": map[string]any{
				"studio-calendar": map[string]any{
					"busy": []map[string]string{
						{"start": "2030-07-02T10:00:00-03:00", "end": "2030-07-02T11:00:00-03:00"},
					},
				},
			},
		})
	})
	mux.HandleFunc("/calendars/studio-calendar/events", func(w http.ResponseWriter, r *http.Request) {
		var ev googlecalendar.Event
		require.NoError(t, json.NewDecoder(r.Body).Decode(&ev))
		u.insertedEvents = append(u.insertedEvents, ev)
		_, _ = w.Write([]byte(`{"id":"evt1"}`))
	})
	u.calendar = httptest.NewServer(mux)

	u.recaptcha = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		score := 0.9
		if r.Form.Get("response") == "low-score-token" {
			score = 0.3
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "score": score})
	}))

	u.places = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "OK",
			"result": map[string]any{
				"rating":             4.8,
				"user_ratings_total": 37,
				"reviews":            []map[string]any{{"author_name": "Ana", "rating": 5}},
			},
		})
	}))

	t.Cleanup(func() {
		u.calendar.Close()
		u.recaptcha.Close()
		u.places.Close()
	})

	return u
}

func newTestRouter(t *testing.T, u *upstream) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		GoogleCalendarID: "studio-calendar",
		GooglePlaceID:    "place-123",
	}

	r := gin.New()
	routes.RegisterRoutes(
		r,
		cfg,
		googlecalendar.NewClient(staticTokens{}, u.calendar.URL, 5*time.Second),
		recaptcha.NewClient("secret", u.recaptcha.URL, 5*time.Second),
		places.NewClient("key", u.places.URL, 5*time.Second),
		cache.New("", time.Minute),
	)
	return r
}

func doJSON(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAvailableSlotsEndpoint(t *testing.T) {
	u := newUpstream(t)
	r := newTestRouter(t, u)

	t.Run("parâmetros obrigatórios", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/available-slots?serviceId=designer-simples", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var out map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Equal(t, "serviceId e date são obrigatórios", out["error"])
	})

	t.Run("serviço desconhecido", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/available-slots?serviceId=corte&date=2030-07-02", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("dia útil com um bloco ocupado", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/available-slots?serviceId=designer-simples&date=2030-07-02", "")
		require.Equal(t, http.StatusOK, w.Code)

		var out struct {
			AvailableSlots []struct {
				Time    time.Time `json:"time"`
				Display string    `json:"display"`
			} `json:"availableSlots"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

		// 20 ticks da grade menos 10:00 e 10:30 ocupados
		assert.Len(t, out.AvailableSlots, 18)
		for _, s := range out.AvailableSlots {
			assert.NotEqual(t, "10:00", s.Display)
			assert.NotEqual(t, "10:30", s.Display)
		}
	})
}

func TestCreateBookingEndpoint(t *testing.T) {
	u := newUpstream(t)
	r := newTestRouter(t, u)

	t.Run("agendamento criado", func(t *testing.T) {
		body := `{
			"serviceId": "designer-simples",
			"dateTime": "2030-07-02T14:00",
			"customerName": "Maria José",
			"customerPhone": "(11) 99999-8888",
			"recaptchaToken": "ok-token"
		}`
		w := doJSON(r, http.MethodPost, "/api/create-booking", body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var out struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.True(t, out.Success)
		assert.Equal(t, "Agendamento realizado com sucesso!", out.Message)

		require.Len(t, u.insertedEvents, 1)
		assert.Equal(t, "Designer de Sobrancelha Simples - Maria José", u.insertedEvents[0].Summary)
	})

	t.Run("score baixo é recusado", func(t *testing.T) {
		body := `{
			"serviceId": "designer-simples",
			"dateTime": "2030-07-02T15:00",
			"customerName": "Maria José",
			"customerPhone": "(11) 99999-8888",
			"recaptchaToken": "low-score-token"
		}`
		w := doJSON(r, http.MethodPost, "/api/create-booking", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var out map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Equal(t, "Verificação de segurança falhou. Tente novamente.", out["error"])
	})

	t.Run("horário ocupado é recusado", func(t *testing.T) {
		body := `{
			"serviceId": "designer-simples",
			"dateTime": "2030-07-02T10:00",
			"customerName": "Maria José",
			"customerPhone": "(11) 99999-8888",
			"recaptchaToken": "ok-token"
		}`
		w := doJSON(r, http.MethodPost, "/api/create-booking", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var out map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Equal(t, "Horário indisponível. Escolha outro horário.", out["error"])
	})
}

func TestReviewsEndpoint(t *testing.T) {
	u := newUpstream(t)
	r := newTestRouter(t, u)

	w := doJSON(r, http.MethodGet, "/api/google-reviews", "")
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Reviews       []map[string]any `json:"reviews"`
		AverageRating float64          `json:"averageRating"`
		TotalRatings  int              `json:"totalRatings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.InDelta(t, 4.8, out.AverageRating, 1e-9)
	assert.Equal(t, 37, out.TotalRatings)
	require.Len(t, out.Reviews, 1)
}

func TestServicesEndpoint(t *testing.T) {
	u := newUpstream(t)
	r := newTestRouter(t, u)

	w := doJSON(r, http.MethodGet, "/api/services", "")
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Data []struct {
			ID          string `json:"id"`
			Name        string `json:"name"`
			DurationMin int    `json:"duration_min"`
			Price       int    `json:"price"`
		} `json:"data"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, 9, out.Total)
	assert.Equal(t, "volume-brasileiro", out.Data[0].ID)
}
