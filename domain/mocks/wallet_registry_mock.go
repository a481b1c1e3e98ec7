package mocks

import (
	"github.com/wardenwallet/swapquote/domain"
	"github.com/wardenwallet/swapquote/domain/mvc"
)

var _ mvc.WalletRegistry = &WalletRegistryMock{}

// WalletRegistryMock is a mock implementation of the WalletRegistry interface
type WalletRegistryMock struct {
	GetWalletFunc func(walletID string) (domain.WalletAdapter, error)
}

// GetWallet implements mvc.WalletRegistry.
func (m *WalletRegistryMock) GetWallet(walletID string) (domain.WalletAdapter, error) {
	if m.GetWalletFunc != nil {
		return m.GetWalletFunc(walletID)
	}
	panic("unimplemented")
}
