// Package submitter assembles, signs and sends Lendy transactions.
package submitter

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lendy-labs/lendy-go/pkg/solana"
	compute_budget "github.com/lendy-labs/lendy-go/pkg/solana/computebudget"
)

var (
	ErrSubmissionFailure = errors.New("transaction submission failed")
)

// Client is the subset of solana.Client needed to send transactions.
type Client interface {
	GetLatestBlockhash(context.Context) (solana.Blockhash, error)
	SubmitTransaction(context.Context, solana.Transaction, solana.Commitment) (solana.Signature, error)
}

type Submitter struct {
	log    *logrus.Entry
	client Client
	signer ed25519.PrivateKey
	conf   *conf
}

// New returns a Submitter paying for and signing transactions with signer.
func New(client Client, signer ed25519.PrivateKey, configProvider ConfigProvider) *Submitter {
	return &Submitter{
		log:    logrus.StandardLogger().WithField("type", "lendy/submitter"),
		client: client,
		signer: signer,
		conf:   configProvider(),
	}
}

func (s *Submitter) Payer() ed25519.PublicKey {
	return s.signer.Public().(ed25519.PublicKey)
}

// Build returns the signed transaction Submit would send. Compute budget
// instructions are prepended to instructions.
func (s *Submitter) Build(ctx context.Context, instructions ...solana.Instruction) (solana.Transaction, error) {
	if len(instructions) == 0 {
		return solana.Transaction{}, newSubmissionError("no instructions", nil)
	}

	limit, err := s.conf.computeUnitLimit.GetSafe(ctx)
	if err != nil {
		return solana.Transaction{}, newSubmissionError("invalid compute unit limit", err)
	}
	if limit == 0 || limit > math.MaxUint32 {
		return solana.Transaction{}, newSubmissionError(fmt.Sprintf("compute unit limit %d out of range", limit), nil)
	}

	budget := []solana.Instruction{
		compute_budget.SetComputeUnitLimit(uint32(limit)),
	}
	if price := s.conf.computeUnitPrice.Get(ctx); price > 0 {
		budget = append(budget, compute_budget.SetComputeUnitPrice(price))
	}

	blockhash, err := s.client.GetLatestBlockhash(ctx)
	if err != nil {
		return solana.Transaction{}, newSubmissionError("failed to get latest blockhash", err)
	}

	txn := solana.NewTransaction(s.Payer(), append(budget, instructions...)...)
	txn.SetBlockhash(blockhash)
	if err := txn.Sign(s.signer); err != nil {
		return solana.Transaction{}, newSubmissionError("failed to sign transaction", err)
	}

	if size := len(txn.Marshal()); size > solana.MaxTransactionSize {
		return solana.Transaction{}, newSubmissionError(fmt.Sprintf("transaction size %d exceeds %d", size, solana.MaxTransactionSize), nil)
	}

	return txn, nil
}

// Submit builds, signs and sends instructions with preflight simulation. The
// send is never retried.
func (s *Submitter) Submit(ctx context.Context, instructions ...solana.Instruction) (solana.Signature, error) {
	log := s.log.WithField("method", "Submit")

	txn, err := s.Build(ctx, instructions...)
	if err != nil {
		return solana.Signature{}, err
	}

	commitment, err := solana.CommitmentFromString(s.conf.commitment.Get(ctx))
	if err != nil {
		return solana.Signature{}, newSubmissionError("invalid commitment", err)
	}

	sig, err := s.client.SubmitTransaction(ctx, txn, commitment)
	if err != nil {
		log.WithError(err).WithField("signature", sig.String()).Warn("transaction rejected")
		return sig, newSubmissionError("failed to submit transaction", err)
	}

	log.WithField("signature", sig.String()).Info("transaction submitted")
	return sig, nil
}

// submissionError matches both ErrSubmissionFailure and its cause, so callers
// can still reach a *solana.TransactionError with errors.As.
type submissionError struct {
	msg   string
	cause error
}

func newSubmissionError(msg string, cause error) error {
	return &submissionError{msg: msg, cause: cause}
}

func (e *submissionError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%s: %s", ErrSubmissionFailure, e.msg)
	}
	return fmt.Sprintf("%s: %s: %s", ErrSubmissionFailure, e.msg, e.cause)
}

func (e *submissionError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrSubmissionFailure}
	}
	return []error{ErrSubmissionFailure, e.cause}
}
