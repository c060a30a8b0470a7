package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const DefaultEndpoint = "https://maps.googleapis.com/maps/api/place/details/json"

var (
	ErrInternal        = errors.New("places client: internal error")
	ErrInvalidResponse = errors.New("places client: invalid response")
)

// Review é uma avaliação pública do estabelecimento, repassada ao site
// como veio da API.
type Review struct {
	AuthorName              string  `json:"author_name"`
	ProfilePhotoURL         string  `json:"profile_photo_url"`
	Rating                  float64 `json:"rating"`
	RelativeTimeDescription string  `json:"relative_time_description"`
	Text                    string  `json:"text"`
	Time                    int64   `json:"time"`
}

type Details struct {
	Reviews          []Review `json:"reviews"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
}

type detailsResponse struct {
	Status string  `json:"status"`
	Result Details `json:"result"`
}

type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiKey, endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Details busca avaliações, nota média e total de avaliações do local.
func (c *Client) Details(ctx context.Context, placeID string) (*Details, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "reviews,rating,user_ratings_total")
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.endpoint+"?"+params.Encode(),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var out detailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if out.Status != "OK" {
		return nil, fmt.Errorf("%w: provider status %q", ErrInvalidResponse, out.Status)
	}

	return &out.Result, nil
}
