package thorchain

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wardenwallet/swapquote/domain"
	"github.com/wardenwallet/swapquote/log"
)

const (
	providerName = "thorchain"

	poolsPath            = "/v2/pools"
	inboundAddressesPath = "/v2/thorchain/inbound_addresses"

	defaultRequestTimeout = 10 * time.Second
)

// Client fetches provider snapshots over HTTP. One logical call tries the
// ordered server list and returns the first answer; there are no retries
// beyond that single pass.
//
// The configured list is only the bootstrap; SetServers rotates the client
// onto the provider-published list as exchange parameters refresh.
type Client struct {
	mu         sync.RWMutex
	servers    []string
	httpClient *http.Client
	logger     log.Logger
}

// NewClient creates a provider client over the given ordered server list.
func NewClient(servers []string, logger log.Logger) *Client {
	return &Client{
		servers: servers,
		httpClient: &http.Client{
			Timeout: defaultRequestTimeout,
		},
		logger: logger,
	}
}

// SetServers replaces the fallback rotation. An empty list is ignored so a
// degenerate parameters document cannot strand the client.
func (c *Client) SetServers(servers []string) {
	if len(servers) == 0 {
		return
	}

	c.mu.Lock()
	c.servers = servers
	c.mu.Unlock()
}

func (c *Client) serverList() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.servers
}

// Pools returns the current pool snapshots. Zero-depth pools are carried
// through; lookups treat them as not found.
func (c *Client) Pools(ctx context.Context) ([]domain.Pool, error) {
	var replies []poolResponse
	if err := c.getJSON(ctx, poolsPath, &replies); err != nil {
		return nil, err
	}

	pools := make([]domain.Pool, 0, len(replies))
	for _, reply := range replies {
		if err := reply.validate(); err != nil {
			return nil, domain.ProviderProtocolError{
				Provider: providerName,
				Endpoint: poolsPath,
				Cause:    err.Error(),
			}
		}
		pools = append(pools, reply.toDomain())
	}

	return pools, nil
}

// InboundAddresses returns the per-chain deposit lane snapshots.
func (c *Client) InboundAddresses(ctx context.Context) ([]domain.InboundAddress, error) {
	var replies []inboundAddressResponse
	if err := c.getJSON(ctx, inboundAddressesPath, &replies); err != nil {
		return nil, err
	}

	addresses := make([]domain.InboundAddress, 0, len(replies))
	for _, reply := range replies {
		if err := reply.validate(); err != nil {
			return nil, domain.ProviderProtocolError{
				Provider: providerName,
				Endpoint: inboundAddressesPath,
				Cause:    err.Error(),
			}
		}
		addresses = append(addresses, reply.toDomain())
	}

	return addresses, nil
}

// getJSON tries each server in order and decodes the first successful
// reply into out. Unknown fields are tolerated; missing or malformed
// required fields are caught by the per-entry validation.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	servers := c.serverList()
	if len(servers) == 0 {
		return domain.ProviderProtocolError{
			Provider: providerName,
			Endpoint: path,
			Cause:    "no servers configured",
		}
	}

	var lastErr error
	for _, server := range servers {
		url := strings.TrimSuffix(server, "/") + path

		err := c.getJSONFrom(ctx, url, out)
		if err == nil {
			return nil
		}
		lastErr = err

		c.logger.Warn("provider server failed, trying next",
			zap.String("url", url),
			zap.Error(err),
		)
	}

	return domain.ProviderProtocolError{
		Provider: providerName,
		Endpoint: path,
		Cause:    lastErr.Error(),
	}
}

func (c *Client) getJSONFrom(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Bounded read keeps a misbehaving server from flooding the log.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("malformed reply: %w", err)
	}

	return nil
}
