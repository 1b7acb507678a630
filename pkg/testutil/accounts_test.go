package testutil

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendy-labs/lendy-go/pkg/solana"
)

func TestAccountStore(t *testing.T) {
	keys := GenerateSolanaKeys(t, 3)
	store := NewAccountStore()
	store.Put(keys[0], []byte{1, 2, 3})
	store.Put(keys[2], []byte{4})

	info, err := store.GetAccountInfo(context.Background(), keys[0], solana.CommitmentConfirmed)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, info.Data)

	_, err = store.GetAccountInfo(context.Background(), keys[1], solana.CommitmentConfirmed)
	assert.Equal(t, solana.ErrNoAccountInfo, err)

	infos, err := store.GetMultipleAccounts(context.Background(), keys, solana.CommitmentConfirmed)
	require.NoError(t, err)
	require.Len(t, infos, 3)
	assert.Equal(t, []byte{1, 2, 3}, infos[0].Data)
	assert.Nil(t, infos[1])
	assert.Equal(t, []byte{4}, infos[2].Data)

	store.Delete(keys[0])
	_, err = store.GetAccountInfo(context.Background(), keys[0], solana.CommitmentConfirmed)
	assert.Equal(t, solana.ErrNoAccountInfo, err)

	store.Err = errors.New("unavailable")
	_, err = store.GetMultipleAccounts(context.Background(), keys, solana.CommitmentConfirmed)
	assert.Equal(t, store.Err, err)

	assert.Equal(t, 3, store.Calls("getAccountInfo"))
	assert.Equal(t, 2, store.Calls("getMultipleAccounts"))
}
