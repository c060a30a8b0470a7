package googlecalendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/StudioBellaCilios/studio-scheduler/internal/domain/booking"
	"github.com/StudioBellaCilios/studio-scheduler/internal/timezone"
)

const DefaultBaseURL = "https://www.googleapis.com/calendar/v3"

// Client fala com a Google Calendar API v3 por REST. Uma única ida e
// volta por chamada; sem retry interno.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

func NewClient(tokens TokenSource, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FreeBusy consulta os blocos ocupados do calendário no intervalo dado.
func (c *Client) FreeBusy(
	ctx context.Context,
	calendarID string,
	timeMin, timeMax time.Time,
) ([]booking.BusyInterval, error) {

	body := freeBusyRequest{
		TimeMin:  timeMin.Format(time.RFC3339),
		TimeMax:  timeMax.Format(time.RFC3339),
		TimeZone: timezone.Name,
		Items:    []freeBusyCalendar{{ID: calendarID}},
	}

	var out freeBusyResponse
	if err := c.post(ctx, c.baseURL+"/freeBusy", body, &out); err != nil {
		return nil, err
	}

	blocks := out.Calendars[calendarID].Busy
	busy := make([]booking.BusyInterval, 0, len(blocks))
	for _, b := range blocks {
		start, err := time.Parse(time.RFC3339, b.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: bad busy block start %q: %v", ErrInvalidResponse, b.Start, err)
		}
		end, err := time.Parse(time.RFC3339, b.End)
		if err != nil {
			return nil, fmt.Errorf("%w: bad busy block end %q: %v", ErrInvalidResponse, b.End, err)
		}
		busy = append(busy, booking.BusyInterval{Start: start, End: end})
	}

	return busy, nil
}

// InsertEvent cria um evento no calendário.
func (c *Client) InsertEvent(ctx context.Context, calendarID string, ev Event) error {
	endpoint := fmt.Sprintf(
		"%s/calendars/%s/events",
		c.baseURL,
		url.PathEscape(calendarID),
	)
	return c.post(ctx, endpoint, ev, nil)
}

func (c *Client) post(ctx context.Context, endpoint string, in any, out any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
