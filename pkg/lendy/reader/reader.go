// Package reader fetches and decodes Lendy program accounts.
package reader

import (
	"context"
	"crypto/ed25519"
	"reflect"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/lendy-labs/lendy-go/pkg/rate"
	"github.com/lendy-labs/lendy-go/pkg/solana"
	"github.com/lendy-labs/lendy-go/pkg/solana/lendy"
)

var (
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidDestination is returned when a destination is nil or is not
	// a non-nil pointer.
	ErrInvalidDestination = errors.New("invalid destination")
)

const (
	getAccountInfoKey      = "getAccountInfo"
	getMultipleAccountsKey = "getMultipleAccounts"
)

// AccountFetcher is the subset of solana.Client the reader depends on.
type AccountFetcher interface {
	GetAccountInfo(context.Context, ed25519.PublicKey, solana.Commitment) (solana.AccountInfo, error)
	GetMultipleAccounts(context.Context, []ed25519.PublicKey, solana.Commitment) ([]*solana.AccountInfo, error)
}

// Request pairs an address with the account it is decoded into.
type Request struct {
	Address ed25519.PublicKey
	Dst     lendy.Account
}

type Reader struct {
	fetcher    AccountFetcher
	limiter    rate.Limiter
	commitment solana.Commitment
}

type Option func(*Reader)

// WithLimiter throttles RPC calls made by the reader.
func WithLimiter(limiter rate.Limiter) Option {
	return func(r *Reader) {
		r.limiter = limiter
	}
}

func WithCommitment(commitment solana.Commitment) Option {
	return func(r *Reader) {
		r.commitment = commitment
	}
}

func New(fetcher AccountFetcher, opts ...Option) *Reader {
	r := &Reader{
		fetcher:    fetcher,
		limiter:    &rate.NoLimiter{},
		commitment: solana.CommitmentConfirmed,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// FetchOne reads the account at address into dst.
func (r *Reader) FetchOne(ctx context.Context, address ed25519.PublicKey, dst lendy.Account) error {
	if err := checkDestination(address, dst); err != nil {
		return err
	}

	if err := r.limiter.Wait(ctx, getAccountInfoKey); err != nil {
		return err
	}

	info, err := r.fetcher.GetAccountInfo(ctx, address, r.commitment)
	if errors.Is(err, solana.ErrNoAccountInfo) {
		return errors.Wrap(ErrAccountNotFound, base58.Encode(address))
	} else if err != nil {
		return errors.Wrapf(err, "failed to fetch account %s", base58.Encode(address))
	}

	if err := dst.Unmarshal(info.Data); err != nil {
		return errors.Wrapf(err, "failed to decode account %s", base58.Encode(address))
	}
	return nil
}

// FetchMany reads every requested account in a single round trip. Either all
// destinations are populated or none are: a missing account fails the whole
// batch with ErrAccountNotFound naming the first missing address.
func (r *Reader) FetchMany(ctx context.Context, requests []Request) error {
	if len(requests) == 0 {
		return nil
	}

	for _, req := range requests {
		if err := checkDestination(req.Address, req.Dst); err != nil {
			return err
		}
	}

	if err := r.limiter.Wait(ctx, getMultipleAccountsKey); err != nil {
		return err
	}

	addresses := make([]ed25519.PublicKey, len(requests))
	for i, req := range requests {
		addresses[i] = req.Address
	}

	infos, err := r.fetcher.GetMultipleAccounts(ctx, addresses, r.commitment)
	if err != nil {
		return errors.Wrap(err, "failed to fetch accounts")
	}
	if len(infos) != len(requests) {
		return errors.Errorf("expected %d accounts, got %d", len(requests), len(infos))
	}

	for i, info := range infos {
		if info == nil {
			return errors.Wrap(ErrAccountNotFound, base58.Encode(addresses[i]))
		}
	}

	decoded := make([]reflect.Value, len(requests))
	for i, req := range requests {
		scratch := reflect.New(reflect.TypeOf(req.Dst).Elem())
		if err := scratch.Interface().(lendy.Account).Unmarshal(infos[i].Data); err != nil {
			return errors.Wrapf(err, "failed to decode account %s", base58.Encode(addresses[i]))
		}
		decoded[i] = scratch
	}

	for i, req := range requests {
		reflect.ValueOf(req.Dst).Elem().Set(decoded[i].Elem())
	}
	return nil
}

func (r *Reader) GetUser(ctx context.Context, address ed25519.PublicKey) (*lendy.UserAccount, error) {
	var account lendy.UserAccount
	if err := r.FetchOne(ctx, address, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *Reader) GetOffer(ctx context.Context, address ed25519.PublicKey) (*lendy.OfferAccount, error) {
	var account lendy.OfferAccount
	if err := r.FetchOne(ctx, address, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *Reader) GetLoan(ctx context.Context, address ed25519.PublicKey) (*lendy.LoanAccount, error) {
	var account lendy.LoanAccount
	if err := r.FetchOne(ctx, address, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *Reader) GetPair(ctx context.Context, address ed25519.PublicKey) (*lendy.PairAccount, error) {
	var account lendy.PairAccount
	if err := r.FetchOne(ctx, address, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Exists reports whether an account is present at address, regardless of
// its contents.
func (r *Reader) Exists(ctx context.Context, address ed25519.PublicKey) (bool, error) {
	if err := r.limiter.Wait(ctx, getAccountInfoKey); err != nil {
		return false, err
	}

	_, err := r.fetcher.GetAccountInfo(ctx, address, r.commitment)
	if errors.Is(err, solana.ErrNoAccountInfo) {
		return false, nil
	} else if err != nil {
		return false, errors.Wrapf(err, "failed to fetch account %s", base58.Encode(address))
	}
	return true, nil
}

func checkDestination(address ed25519.PublicKey, dst lendy.Account) error {
	if dst == nil {
		return errors.Wrapf(ErrInvalidDestination, "nil destination for %s", base58.Encode(address))
	}

	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return errors.Wrapf(ErrInvalidDestination, "%T destination for %s", dst, base58.Encode(address))
	}
	return nil
}
