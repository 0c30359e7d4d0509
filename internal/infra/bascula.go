package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// pesoResponse is returned by the scale bridge sidecar, which owns the serial
// connection to the drawer scale.
type pesoResponse struct {
	Peso   decimal.Decimal `json:"peso"`   // kilograms, 3 decimals
	Stable bool            `json:"stable"` // reading settled
}

// BasculaClient is an HTTP client for the scale bridge sidecar. Calls go
// through a circuit breaker so a dead bridge fails fast instead of holding the
// checkout lane.
type BasculaClient struct {
	baseURL    string
	httpClient *http.Client
	cb         *CircuitBreaker
}

func NewBasculaClient(baseURL string, cb *CircuitBreaker) *BasculaClient {
	return &BasculaClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		cb:         cb,
	}
}

// LeerPeso asks the bridge for the current stable reading.
func (c *BasculaClient) LeerPeso(ctx context.Context) (decimal.Decimal, error) {
	var peso decimal.Decimal
	err := c.cb.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/peso", nil)
		if err != nil {
			return fmt.Errorf("bascula: create request: %w", err)
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("bascula: bridge unreachable: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("bascula: bridge returned %d", resp.StatusCode)
		}
		var result pesoResponse
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return fmt.Errorf("bascula: decode response: %w", err)
		}
		if !result.Stable {
			return fmt.Errorf("bascula: reading not stable")
		}
		peso = result.Peso
		return nil
	})
	return peso, err
}

// Estado reports the breaker state for the health endpoint.
func (c *BasculaClient) Estado() CBState {
	return c.cb.State()
}
