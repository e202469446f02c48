package submit

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
)

const defaultGitHubAPIURL = "https://api.github.com"

// GitHubConfig locates the order repository. The token comes from
// deployment configuration only.
type GitHubConfig struct {
	Owner   string
	Repo    string
	Branch  string
	Token   string
	BaseURL string
}

// GitHubSubmitter writes the order JSON into the repository under
// orders/pending/ through the contents API. Calls go through a circuit
// breaker so a dead endpoint fails fast instead of hanging every
// checkout on the transport timeout.
type GitHubSubmitter struct {
	cfg     GitHubConfig
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[*remoteResponse]
}

type remoteResponse struct {
	status int
	body   []byte
}

func NewGitHubSubmitter(cfg GitHubConfig) *GitHubSubmitter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultGitHubAPIURL
	}
	if cfg.Branch == "" {
		cfg.Branch = "main"
	}
	return &GitHubSubmitter{
		cfg: cfg,
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   30 * time.Second,
		},
		breaker: gobreaker.NewCircuitBreaker[*remoteResponse](gobreaker.Settings{
			Name: "github-contents",
		}),
	}
}

func (g *GitHubSubmitter) Submit(ctx context.Context, order *domain.OrderRecord) (*Outcome, error) {
	if g.cfg.Token == "" {
		return nil, &ConfigurationError{Reason: "GitHub token is not configured"}
	}

	orderJSON, err := json.MarshalIndent(order, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order: %w", err)
	}

	fileName := order.ID + ".json"
	path := "orders/pending/" + fileName

	payload := map[string]string{
		"message": fmt.Sprintf("New order: %s - %s", order.Customer.Name, order.Customer.Phone),
		"content": base64.StdEncoding.EncodeToString(orderJSON),
		"branch":  g.cfg.Branch,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s", g.cfg.BaseURL, g.cfg.Owner, g.cfg.Repo, path)

	resp, err := g.breaker.Execute(func() (*remoteResponse, error) {
		return g.put(ctx, url, body)
	})
	if err != nil {
		// breaker-open and plain transport failures look the same to the caller
		return nil, &TransportError{Err: err}
	}

	if resp.status < 200 || resp.status >= 300 {
		return nil, &RemoteError{Status: resp.status, Message: remoteMessage(resp)}
	}

	return &Outcome{
		OrderID: order.ID,
		Via:     ViaGitHub,
		Path:    path,
		Message: "order committed to the repository",
	}, nil
}

// put performs the contents-API request. Only transport failures are
// returned as errors so the breaker does not trip on remote rejections.
func (g *GitHubSubmitter) put(ctx context.Context, url string, body []byte) (*remoteResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "token "+g.cfg.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &remoteResponse{status: resp.StatusCode, body: data}, nil
}

func remoteMessage(resp *remoteResponse) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.body, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return fmt.Sprintf("GitHub API error: %d", resp.status)
}
