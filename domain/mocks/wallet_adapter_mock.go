package mocks

import (
	"context"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/wardenwallet/swapquote/domain"
)

var _ domain.WalletAdapter = &WalletAdapterMock{}

// WalletAdapterMock is a mock implementation of the WalletAdapter interface
type WalletAdapterMock struct {
	GetReceiveAddressFunc    func(ctx context.Context, currencyCode string) (string, error)
	GetBalanceFunc           func(currencyCode string) (osmomath.Int, error)
	NativeToDenominationFunc func(nativeAmount osmomath.Int, currencyCode string) (osmomath.BigDec, error)
	DenominationToNativeFunc func(amount osmomath.BigDec, currencyCode string) (osmomath.Int, error)
	GetMaxSpendableFunc      func(ctx context.Context, spend domain.SpendDescriptor) (osmomath.Int, error)
	MakeSpendFunc            func(ctx context.Context, spend domain.SpendDescriptor) (domain.Transaction, error)
}

// GetReceiveAddress implements domain.WalletAdapter.
func (m *WalletAdapterMock) GetReceiveAddress(ctx context.Context, currencyCode string) (string, error) {
	if m.GetReceiveAddressFunc != nil {
		return m.GetReceiveAddressFunc(ctx, currencyCode)
	}
	panic("unimplemented")
}

// GetBalance implements domain.WalletAdapter.
func (m *WalletAdapterMock) GetBalance(currencyCode string) (osmomath.Int, error) {
	if m.GetBalanceFunc != nil {
		return m.GetBalanceFunc(currencyCode)
	}
	panic("unimplemented")
}

// NativeToDenomination implements domain.WalletAdapter.
func (m *WalletAdapterMock) NativeToDenomination(nativeAmount osmomath.Int, currencyCode string) (osmomath.BigDec, error) {
	if m.NativeToDenominationFunc != nil {
		return m.NativeToDenominationFunc(nativeAmount, currencyCode)
	}
	panic("unimplemented")
}

// DenominationToNative implements domain.WalletAdapter.
func (m *WalletAdapterMock) DenominationToNative(amount osmomath.BigDec, currencyCode string) (osmomath.Int, error) {
	if m.DenominationToNativeFunc != nil {
		return m.DenominationToNativeFunc(amount, currencyCode)
	}
	panic("unimplemented")
}

// GetMaxSpendable implements domain.WalletAdapter.
func (m *WalletAdapterMock) GetMaxSpendable(ctx context.Context, spend domain.SpendDescriptor) (osmomath.Int, error) {
	if m.GetMaxSpendableFunc != nil {
		return m.GetMaxSpendableFunc(ctx, spend)
	}
	panic("unimplemented")
}

// MakeSpend implements domain.WalletAdapter.
func (m *WalletAdapterMock) MakeSpend(ctx context.Context, spend domain.SpendDescriptor) (domain.Transaction, error) {
	if m.MakeSpendFunc != nil {
		return m.MakeSpendFunc(ctx, spend)
	}
	panic("unimplemented")
}
