package testutil

import (
	"context"
	"crypto/ed25519"
	"sync"

	"github.com/mr-tron/base58"

	"github.com/lendy-labs/lendy-go/pkg/solana"
)

// AccountStore is an in memory stand-in for the account reads of
// solana.Client.
type AccountStore struct {
	sync.Mutex

	accounts map[string][]byte
	calls    map[string]int

	// Err, when set, is returned by every read.
	Err error
}

func NewAccountStore() *AccountStore {
	return &AccountStore{
		accounts: make(map[string][]byte),
		calls:    make(map[string]int),
	}
}

// Put stores data at address. Use a Marshal()'d account to store a program
// account.
func (s *AccountStore) Put(address ed25519.PublicKey, data []byte) {
	s.Lock()
	defer s.Unlock()

	s.accounts[base58.Encode(address)] = append([]byte{}, data...)
}

func (s *AccountStore) Delete(address ed25519.PublicKey) {
	s.Lock()
	defer s.Unlock()

	delete(s.accounts, base58.Encode(address))
}

// Calls returns the number of times the RPC method was invoked.
func (s *AccountStore) Calls(method string) int {
	s.Lock()
	defer s.Unlock()

	return s.calls[method]
}

func (s *AccountStore) GetAccountInfo(_ context.Context, address ed25519.PublicKey, _ solana.Commitment) (solana.AccountInfo, error) {
	s.Lock()
	defer s.Unlock()

	s.calls["getAccountInfo"]++
	if s.Err != nil {
		return solana.AccountInfo{}, s.Err
	}

	data, ok := s.accounts[base58.Encode(address)]
	if !ok {
		return solana.AccountInfo{}, solana.ErrNoAccountInfo
	}
	return solana.AccountInfo{Data: append([]byte{}, data...)}, nil
}

func (s *AccountStore) GetMultipleAccounts(_ context.Context, addresses []ed25519.PublicKey, _ solana.Commitment) ([]*solana.AccountInfo, error) {
	s.Lock()
	defer s.Unlock()

	s.calls["getMultipleAccounts"]++
	if s.Err != nil {
		return nil, s.Err
	}

	infos := make([]*solana.AccountInfo, len(addresses))
	for i, address := range addresses {
		data, ok := s.accounts[base58.Encode(address)]
		if !ok {
			continue
		}
		infos[i] = &solana.AccountInfo{Data: append([]byte{}, data...)}
	}
	return infos, nil
}
