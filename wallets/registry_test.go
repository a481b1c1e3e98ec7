package wallets_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wardenwallet/swapquote/domain"
	"github.com/wardenwallet/swapquote/domain/mocks"
	"github.com/wardenwallet/swapquote/wallets"
)

func TestRegistry(t *testing.T) {
	registry := wallets.NewRegistry()

	adapter := &mocks.WalletAdapterMock{}
	registry.Register("btc-wallet", adapter)

	got, err := registry.GetWallet("btc-wallet")
	require.NoError(t, err)
	require.Same(t, adapter, got)

	_, err = registry.GetWallet("missing")
	require.Error(t, err)

	var notFound domain.WalletNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "missing", notFound.WalletID)
}
