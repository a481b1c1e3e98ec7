// Package wallets holds the in-process wallet adapter registry. The
// embedding wallet application registers one adapter per wallet id before
// serving quotes.
package wallets

import (
	"sync"

	"github.com/wardenwallet/swapquote/domain"
	"github.com/wardenwallet/swapquote/domain/mvc"
)

var _ mvc.WalletRegistry = &Registry{}

// Registry is a concurrency-safe wallet adapter registry.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]domain.WalletAdapter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		adapters: make(map[string]domain.WalletAdapter),
	}
}

// Register binds an adapter to a wallet id, replacing any previous binding.
func (r *Registry) Register(walletID string, adapter domain.WalletAdapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adapters[walletID] = adapter
}

// GetWallet implements mvc.WalletRegistry.
func (r *Registry) GetWallet(walletID string) (domain.WalletAdapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, ok := r.adapters[walletID]
	if !ok {
		return nil, domain.WalletNotFoundError{WalletID: walletID}
	}
	return adapter, nil
}
