package submitter

import (
	"context"
	"crypto/ed25519"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendy-labs/lendy-go/pkg/solana"
	compute_budget "github.com/lendy-labs/lendy-go/pkg/solana/computebudget"
	"github.com/lendy-labs/lendy-go/pkg/solana/lendy"
	"github.com/lendy-labs/lendy-go/pkg/testutil"
)

type fakeClient struct {
	sync.Mutex

	blockhash    solana.Blockhash
	blockhashErr error
	submitErr    error

	submitted   []solana.Transaction
	commitments []solana.Commitment
}

func (c *fakeClient) GetLatestBlockhash(_ context.Context) (solana.Blockhash, error) {
	return c.blockhash, c.blockhashErr
}

func (c *fakeClient) SubmitTransaction(_ context.Context, txn solana.Transaction, commitment solana.Commitment) (solana.Signature, error) {
	c.Lock()
	defer c.Unlock()

	c.submitted = append(c.submitted, txn)
	c.commitments = append(c.commitments, commitment)

	var sig solana.Signature
	copy(sig[:], txn.Signature())
	return sig, c.submitErr
}

func setup(t *testing.T, overrides *testOverrides) (*fakeClient, ed25519.PrivateKey, *Submitter) {
	client := &fakeClient{blockhash: solana.Blockhash{1, 2, 3}}
	signer := testutil.GenerateSolanaKeypair(t)
	return client, signer, New(client, signer, withManualTestOverrides(overrides))
}

func TestSubmit(t *testing.T) {
	client, signer, submitter := setup(t, &testOverrides{})

	sig, err := submitter.Submit(context.Background(), lendy.NewVersionInstruction())
	require.NoError(t, err)

	require.Len(t, client.submitted, 1)
	txn := client.submitted[0]

	payer := signer.Public().(ed25519.PublicKey)
	assert.Equal(t, payer, txn.Message.Accounts[0])
	assert.Equal(t, client.blockhash, txn.Message.RecentBlockhash)
	assert.Equal(t, solana.CommitmentConfirmed, client.commitments[0])
	assert.True(t, ed25519.Verify(payer, txn.Message.Marshal(), txn.Signature()))
	assert.Equal(t, txn.Signature(), sig[:])

	// Compute budget first, then the caller's instruction.
	require.Len(t, txn.Message.Instructions, 2)
	budget := txn.Message.Instructions[0]
	assert.Equal(t, compute_budget.ProgramKey, txn.Message.Accounts[budget.ProgramIndex])
	limit, err := compute_budget.ParseSetComputeUnitLimitIxnData(budget.Data)
	require.NoError(t, err)
	assert.EqualValues(t, 1_000_000, limit)

	version := txn.Message.Instructions[1]
	assert.Equal(t, lendy.PROGRAM_ID, txn.Message.Accounts[version.ProgramIndex])
	assert.Equal(t, []byte{15}, version.Data)
}

func TestBuild_Overrides(t *testing.T) {
	client, _, submitter := setup(t, &testOverrides{
		computeUnitLimit: 200_000,
		computeUnitPrice: 5_000,
	})

	txn, err := submitter.Build(context.Background(), lendy.NewVersionInstruction())
	require.NoError(t, err)
	assert.Empty(t, client.submitted)

	require.Len(t, txn.Message.Instructions, 3)
	limit, err := compute_budget.ParseSetComputeUnitLimitIxnData(txn.Message.Instructions[0].Data)
	require.NoError(t, err)
	assert.EqualValues(t, 200_000, limit)

	price, err := compute_budget.ParseSetComputeUnitPriceIxnData(txn.Message.Instructions[1].Data)
	require.NoError(t, err)
	assert.EqualValues(t, 5_000, price)
}

func TestSubmit_Commitment(t *testing.T) {
	client, _, submitter := setup(t, &testOverrides{commitment: "finalized"})

	_, err := submitter.Submit(context.Background(), lendy.NewVersionInstruction())
	require.NoError(t, err)
	assert.Equal(t, solana.CommitmentFinalized, client.commitments[0])

	_, _, submitter = setup(t, &testOverrides{commitment: "eventually"})
	_, err = submitter.Submit(context.Background(), lendy.NewVersionInstruction())
	assert.True(t, errors.Is(err, ErrSubmissionFailure))
}

func TestSubmit_Rejected(t *testing.T) {
	client, _, submitter := setup(t, &testOverrides{})

	txErr, err := solana.ParseTransactionError(map[string]interface{}{
		"InstructionError": []interface{}{1.0, map[string]interface{}{"Custom": 6.0}},
	})
	require.NoError(t, err)
	txErr.Logs = []string{"Program log: offer is disabled"}
	client.submitErr = txErr

	_, err = submitter.Submit(context.Background(), lendy.NewVersionInstruction())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSubmissionFailure))

	var actual *solana.TransactionError
	require.True(t, errors.As(err, &actual))
	assert.Equal(t, []string{"Program log: offer is disabled"}, actual.Logs)

	// Never retried.
	assert.Len(t, client.submitted, 1)
}

func TestSubmit_BlockhashFailure(t *testing.T) {
	client, _, submitter := setup(t, &testOverrides{})
	client.blockhashErr = errors.New("node behind")

	_, err := submitter.Submit(context.Background(), lendy.NewVersionInstruction())
	assert.True(t, errors.Is(err, ErrSubmissionFailure))
	assert.True(t, errors.Is(err, client.blockhashErr))
	assert.Empty(t, client.submitted)
}

func TestBuild_Invalid(t *testing.T) {
	_, _, submitter := setup(t, &testOverrides{})

	_, err := submitter.Build(context.Background())
	assert.True(t, errors.Is(err, ErrSubmissionFailure))

	_, _, submitter = setup(t, &testOverrides{computeUnitLimit: 1 << 33})
	_, err = submitter.Build(context.Background(), lendy.NewVersionInstruction())
	assert.True(t, errors.Is(err, ErrSubmissionFailure))
}

func TestBuild_TooLarge(t *testing.T) {
	_, _, submitter := setup(t, &testOverrides{})

	var instructions []solana.Instruction
	for _, key := range testutil.GenerateSolanaKeys(t, 40) {
		instructions = append(instructions, solana.NewInstruction(lendy.PROGRAM_ID, []byte{15}, solana.NewReadonlyAccountMeta(key, false)))
	}

	_, err := submitter.Build(context.Background(), instructions...)
	assert.True(t, errors.Is(err, ErrSubmissionFailure))
	assert.Contains(t, err.Error(), "exceeds")
}
