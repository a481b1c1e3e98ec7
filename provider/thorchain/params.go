package thorchain

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wardenwallet/swapquote/domain"
	"github.com/wardenwallet/swapquote/log"
)

const paramsPath = "/v2/swap/params"

// ParamsCache holds the provider-tunable exchange parameters, refreshed at
// most once per interval. On refresh failure the previous values are
// retained; a refresh either fully replaces all fields together or is
// discarded.
//
// Concurrent quote requests share one instance; a racing refresh is
// last-write-wins, which is acceptable because every refresh is
// self-consistent.
type ParamsCache struct {
	mu      sync.Mutex
	current domain.ExchangeParameters

	paramsURL       string
	refreshInterval time.Duration
	httpClient      *http.Client
	logger          log.Logger

	// onRefresh, when set, is invoked with each successfully refreshed
	// document so dependents can follow the published values.
	onRefresh func(domain.ExchangeParameters)

	// now is swappable for tests.
	now func() time.Time
}

// NewParamsCache creates a cache seeded with the configured defaults. The
// seed carries a zero LastRefreshedAt so the first Get attempts a refresh.
func NewParamsCache(paramsURL string, refreshInterval time.Duration, seed domain.ExchangeParameters, logger log.Logger) *ParamsCache {
	return &ParamsCache{
		current:         seed,
		paramsURL:       paramsURL,
		refreshInterval: refreshInterval,
		httpClient: &http.Client{
			Timeout: defaultRequestTimeout,
		},
		logger: logger,
		now:    time.Now,
	}
}

// OnRefresh registers a callback invoked after every successful refresh
// with the newly stored parameters. Register before the cache is shared
// across goroutines; the callback runs under the cache lock and must not
// call back into the cache.
func (p *ParamsCache) OnRefresh(fn func(domain.ExchangeParameters)) {
	p.onRefresh = fn
}

// Get returns the current parameters, refreshing them opportunistically
// when the refresh interval has elapsed. A failed refresh never nulls out
// good data.
func (p *ParamsCache) Get(ctx context.Context) domain.ExchangeParameters {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.now().Sub(p.current.LastRefreshedAt) < p.refreshInterval {
		return p.current
	}

	refreshed, err := p.fetch(ctx)
	if err != nil {
		p.logger.Warn("exchange parameters refresh failed, retaining previous values",
			zap.String("url", p.paramsURL),
			zap.Error(err),
		)
		// Stamp the attempt so a flapping endpoint is not hammered on
		// every quote.
		p.current.LastRefreshedAt = p.now()
		return p.current
	}

	p.current = refreshed
	if p.onRefresh != nil {
		p.onRefresh(refreshed)
	}
	return p.current
}

func (p *ParamsCache) fetch(ctx context.Context) (domain.ExchangeParameters, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.paramsURL+paramsPath, nil)
	if err != nil {
		return domain.ExchangeParameters{}, err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return domain.ExchangeParameters{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.ExchangeParameters{}, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var reply exchangeParamsResponse
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return domain.ExchangeParameters{}, fmt.Errorf("malformed reply: %w", err)
	}
	if err := reply.validate(); err != nil {
		return domain.ExchangeParameters{}, err
	}

	return domain.ExchangeParameters{
		VolatilitySpreadBps:         reply.VolatilitySpreadBps,
		LikeKindVolatilitySpreadBps: reply.LikeKindVolatilitySpreadBps,
		ServerList:                  reply.Servers,
		LastRefreshedAt:             p.now(),
	}, nil
}
