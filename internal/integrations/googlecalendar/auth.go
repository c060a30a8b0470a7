package googlecalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var scopes = []string{
	"https://www.googleapis.com/auth/calendar",
	"https://www.googleapis.com/auth/calendar.events",
}

// ServiceAccount é o arquivo de credenciais JSON emitido pelo Google.
type ServiceAccount struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
	TokenURI    string `json:"token_uri"`
}

func LoadServiceAccount(path string) (*ServiceAccount, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read key file: %v", ErrAuth, err)
	}

	var sa ServiceAccount
	if err := json.Unmarshal(raw, &sa); err != nil {
		return nil, fmt.Errorf("%w: failed to parse key file: %v", ErrAuth, err)
	}

	if sa.ClientEmail == "" || sa.PrivateKey == "" {
		return nil, fmt.Errorf("%w: key file missing client_email or private_key", ErrAuth)
	}

	if sa.TokenURI == "" {
		sa.TokenURI = "https://oauth2.googleapis.com/token"
	}

	return &sa, nil
}

// TokenSource fornece access tokens para as chamadas à Calendar API.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// serviceAccountTokenSource assina uma assertion JWT (RS256) com a chave
// da conta de serviço e troca por um access token no endpoint OAuth.
// O token vale uma hora e fica em cache até perto de expirar.
type serviceAccountTokenSource struct {
	account    *ServiceAccount
	httpClient *http.Client

	mu     sync.Mutex
	token  string
	expiry time.Time
}

func NewServiceAccountTokenSource(sa *ServiceAccount, timeout time.Duration) TokenSource {
	return &serviceAccountTokenSource{
		account: sa,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (ts *serviceAccountTokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token != "" && time.Now().Before(ts.expiry.Add(-30*time.Second)) {
		return ts.token, nil
	}

	assertion, err := ts.signAssertion()
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("grant_type", "urn:ietf:params:oauth:grant-type:jwt-bearer")
	form.Set("assertion", assertion)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		ts.account.TokenURI,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create token request: %v", ErrAuth, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: token request failed: %v", ErrAuth, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: token endpoint returned status %d", ErrAuth, resp.StatusCode)
	}

	var out struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: failed to decode token response: %v", ErrAuth, err)
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("%w: token endpoint returned empty access_token", ErrAuth)
	}

	ts.token = out.AccessToken
	ts.expiry = time.Now().Add(time.Duration(out.ExpiresIn) * time.Second)

	return ts.token, nil
}

func (ts *serviceAccountTokenSource) signAssertion() (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(ts.account.PrivateKey))
	if err != nil {
		return "", fmt.Errorf("%w: failed to parse private key: %v", ErrAuth, err)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   ts.account.ClientEmail,
		"scope": strings.Join(scopes, " "),
		"aud":   ts.account.TokenURI,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}

	assertion, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("%w: failed to sign assertion: %v", ErrAuth, err)
	}

	return assertion, nil
}
