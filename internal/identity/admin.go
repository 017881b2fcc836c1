// AngelaMos | 2026
// admin.go

package identity

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/config"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
)

// AdminClient calls the identity backend's admin API with the service role
// key. It is only used to remove identities of rejected sign-ups.
type AdminClient struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

func NewAdminClient(cfg config.IdentityConfig) *AdminClient {
	timeout := cfg.AdminTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &AdminClient{
		baseURL:    strings.TrimRight(cfg.AdminURL, "/"),
		serviceKey: cfg.ServiceRoleKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *AdminClient) Configured() bool {
	return c.baseURL != "" && c.serviceKey != ""
}

func (c *AdminClient) DeleteUser(ctx context.Context, userID string) error {
	if !c.Configured() {
		return fmt.Errorf("delete identity: %w", core.ErrUnconfigured)
	}

	endpoint := c.baseURL + "/admin/users/" + url.PathEscape(userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("delete identity: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete identity: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512)) //nolint:errcheck // diagnostic only
		return fmt.Errorf(
			"delete identity: status %d: %s",
			resp.StatusCode,
			strings.TrimSpace(string(body)),
		)
	}

	return nil
}
