package main

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendy-labs/lendy-go/pkg/solana"
	compute_budget "github.com/lendy-labs/lendy-go/pkg/solana/computebudget"
	"github.com/lendy-labs/lendy-go/pkg/solana/lendy"
	"github.com/lendy-labs/lendy-go/pkg/solana/token"
	"github.com/lendy-labs/lendy-go/pkg/testutil"
)

type fakeClient struct {
	*testutil.AccountStore

	mu        sync.Mutex
	endpoint  string
	submitted []solana.Transaction
}

func (c *fakeClient) GetLatestBlockhash(_ context.Context) (solana.Blockhash, error) {
	return solana.Blockhash{7}, nil
}

func (c *fakeClient) SubmitTransaction(_ context.Context, txn solana.Transaction, _ solana.Commitment) (solana.Signature, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.submitted = append(c.submitted, txn)
	return txn.Signatures[0], nil
}

type testEnv struct {
	client  *fakeClient
	keyPath string
	signer  ed25519.PrivateKey
	user    ed25519.PublicKey
	out     *bytes.Buffer
}

func setup(t *testing.T) *testEnv {
	env := &testEnv{
		client: &fakeClient{AccountStore: testutil.NewAccountStore()},
		signer: testutil.GenerateSolanaKeypair(t),
		out:    &bytes.Buffer{},
	}

	values := make([]int, len(env.signer))
	for i, b := range env.signer {
		values[i] = int(b)
	}
	raw, err := json.Marshal(values)
	require.NoError(t, err)

	env.keyPath = filepath.Join(t.TempDir(), "lender.json")
	require.NoError(t, os.WriteFile(env.keyPath, raw, 0600))

	env.user, _, err = lendy.GetUserAddress(&lendy.GetUserAddressArgs{Owner: env.authority()})
	require.NoError(t, err)

	return env
}

func (e *testEnv) authority() ed25519.PublicKey {
	return e.signer.Public().(ed25519.PublicKey)
}

func (e *testEnv) run(args ...string) error {
	cmd := newRootCmd(func(endpoint string) solana.Client {
		e.client.endpoint = endpoint
		return e.client
	}, e.out)
	cmd.SetArgs(append([]string{"--rpc", "http://localhost:8899", "--key", e.keyPath, "--rpc-limit", "0"}, args...))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

// lendyTypes returns the discriminators of the Lendy instructions in txn,
// after checking the compute budget instruction leads.
func lendyTypes(t *testing.T, txn solana.Transaction) []lendy.InstructionType {
	require.NotEmpty(t, txn.Message.Instructions)
	assert.Equal(t, compute_budget.ProgramKey, txn.Message.Accounts[txn.Message.Instructions[0].ProgramIndex])

	var types []lendy.InstructionType
	for _, ixn := range txn.Message.Instructions[1:] {
		if bytes.Equal(txn.Message.Accounts[ixn.ProgramIndex], lendy.PROGRAM_ID) {
			types = append(types, lendy.InstructionType(ixn.Data[0]))
		}
	}
	return types
}

func TestMakeOffer_CreatesMissingUser(t *testing.T) {
	env := setup(t)

	require.NoError(t, env.run())
	assert.Equal(t, "http://localhost:8899", env.client.endpoint)

	require.Len(t, env.client.submitted, 1)
	txn := env.client.submitted[0]
	assert.Equal(t, []lendy.InstructionType{lendy.InstructionTypeCreateUser, lendy.InstructionTypeMakeOffer}, lendyTypes(t, txn))

	args, err := lendy.DecodeMakeOfferInstructionArgs(txn.Message.Instructions[2].Data)
	require.NoError(t, err)
	assert.EqualValues(t, 49_400_000_000, args.Principal)
	assert.EqualValues(t, 1_000_000_000, args.Collateral)
	assert.Equal(t, "83ebbdaaf2d24cce", args.ClientOfferId.String())

	pair := base58.Encode(txn.Message.Accounts[txn.Message.Instructions[2].Accounts[3]])
	assert.Equal(t, "3VZpYYp2DnjTDRC1qfy8Y9KKgV7QVGfrkViLg1BuhKiZ", pair)

	sig := txn.Signatures[0]
	assert.Equal(t, sig.String()+"\n", env.out.String())
}

func TestMakeOffer_ExistingUser(t *testing.T) {
	env := setup(t)
	env.client.Put(env.user, (&lendy.UserAccount{Owner: env.authority()}).Marshal())

	require.NoError(t, env.run("--principal", "18446744073709551615", "--client-offer-uuid", "offer-2"))

	require.Len(t, env.client.submitted, 1)
	txn := env.client.submitted[0]
	assert.Equal(t, []lendy.InstructionType{lendy.InstructionTypeMakeOffer}, lendyTypes(t, txn))

	args, err := lendy.DecodeMakeOfferInstructionArgs(txn.Message.Instructions[1].Data)
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), args.Principal)
	assert.Equal(t, "offer-2", args.ClientOfferId.String())
}

func TestMakeOffer_EnvOverrides(t *testing.T) {
	env := setup(t)
	t.Setenv("LENDY_COLLATERAL", "42")
	t.Setenv("LENDY_DRY_RUN", "true")

	require.NoError(t, env.run())
	assert.Empty(t, env.client.submitted)
	assert.Contains(t, env.out.String(), "instruction 0: SetComputeUnitLimit 1000000\n")
	assert.Contains(t, env.out.String(), "instruction 1: CreateUser {Nick:}\n")
	assert.Contains(t, env.out.String(), "instruction 2: MakeOffer {ClientOfferId:83ebbdaaf2d24cce Principal:49400000000 Collateral:42}\n")

	// Flags win over the environment.
	env.out.Reset()
	require.NoError(t, env.run("--dry-run=false", "--collateral", "7"))
	require.Len(t, env.client.submitted, 1)

	txn := env.client.submitted[0]
	args, err := lendy.DecodeMakeOfferInstructionArgs(txn.Message.Instructions[len(txn.Message.Instructions)-1].Data)
	require.NoError(t, err)
	assert.EqualValues(t, 7, args.Collateral)
}

func borrowFixtures(t *testing.T, env *testEnv) (offerKey, mint ed25519.PublicKey) {
	keys := testutil.GenerateSolanaKeys(t, 6)
	lenderOwner, pairKey, offerKey := keys[0], keys[1], keys[2]

	lenderUser, _, err := lendy.GetUserAddress(&lendy.GetUserAddressArgs{Owner: lenderOwner})
	require.NoError(t, err)

	pair := &lendy.PairAccount{
		Enabled:               1,
		PrincipalMint:         keys[3],
		CollateralMint:        token.NativeMint,
		CollateralFeeReceiver: keys[4],
		PrincipalFeeReceiver:  keys[5],
	}
	env.client.Put(pairKey, pair.Marshal())
	env.client.Put(offerKey, (&lendy.OfferAccount{Pair: pairKey, Lender: lenderUser}).Marshal())
	env.client.Put(lenderUser, (&lendy.UserAccount{Owner: lenderOwner}).Marshal())
	env.client.Put(env.user, (&lendy.UserAccount{Owner: env.authority()}).Marshal())

	return offerKey, pair.PrincipalMint
}

func TestBorrow(t *testing.T) {
	env := setup(t)
	offer, mint := borrowFixtures(t, env)

	require.NoError(t, env.run(
		"--borrow",
		"--offer", base58.Encode(offer),
		"--amount", "1000",
		"--uuid", "bulk",
		"--client-loan-uuid", "loan-1",
		"--principal-mint", base58.Encode(mint),
	))

	require.Len(t, env.client.submitted, 1)
	txn := env.client.submitted[0]
	require.Len(t, txn.Message.Instructions, 3)

	ata, err := token.GetAssociatedAccount(env.authority(), mint)
	require.NoError(t, err)
	created, err := token.DecompileCreateAssociatedAccount(txn.Message, 1)
	require.NoError(t, err)
	assert.Equal(t, ata, created.Address)
	assert.Equal(t, mint, created.Mint)

	assert.Equal(t, []lendy.InstructionType{lendy.InstructionTypeBorrow}, lendyTypes(t, txn))
	args, err := lendy.DecodeBorrowInstructionArgs(txn.Message.Instructions[2].Data)
	require.NoError(t, err)
	assert.EqualValues(t, 1000, args.Principal)
	assert.Equal(t, "bulk", args.BulkUuid.String())
	assert.Equal(t, "loan-1", args.ClientLoanId.String())
}

func TestBorrow_DryRun(t *testing.T) {
	env := setup(t)
	offer, mint := borrowFixtures(t, env)

	require.NoError(t, env.run(
		"--borrow",
		"--dry-run",
		"--offer", base58.Encode(offer),
		"--amount", "1000",
		"--uuid", "bulk",
		"--client-loan-uuid", "loan-1",
	))
	assert.Empty(t, env.client.submitted)

	ata, err := token.GetAssociatedAccount(env.authority(), mint)
	require.NoError(t, err)

	out := env.out.String()
	assert.Contains(t, out, "instruction 1: CreateAssociatedTokenAccountIdempotent {Address:"+base58.Encode(ata)+
		" Owner:"+base58.Encode(env.authority())+" Mint:"+base58.Encode(mint)+"}\n")
	assert.Contains(t, out, "instruction 2: Borrow {Principal:1000 BulkUuid:bulk ClientLoanId:loan-1}\n")
}

func TestBorrow_PrincipalMintMismatch(t *testing.T) {
	env := setup(t)
	offer, mint := borrowFixtures(t, env)
	other := testutil.GenerateSolanaKeys(t, 1)[0]

	err := env.run(
		"--borrow",
		"--offer", base58.Encode(offer),
		"--amount", "1000",
		"--principal-mint", base58.Encode(other),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), base58.Encode(other))
	assert.Contains(t, err.Error(), base58.Encode(mint))
	assert.Empty(t, env.client.submitted)
}

// The created token account is always the principal wallet Borrow pays into.
func TestBorrow_TokenAccountMatchesBorrow(t *testing.T) {
	env := setup(t)
	offer, _ := borrowFixtures(t, env)

	require.NoError(t, env.run("--borrow", "--offer", base58.Encode(offer), "--amount", "1000"))

	require.Len(t, env.client.submitted, 1)
	m := env.client.submitted[0].Message
	require.Len(t, m.Instructions, 3)

	created, err := token.DecompileCreateAssociatedAccount(m, 1)
	require.NoError(t, err)
	assert.True(t, created.Idempotent)
	assert.Equal(t, env.authority(), created.Owner)

	borrow := m.Instructions[2]
	assert.Equal(t, created.Address, m.Accounts[borrow.Accounts[7]])
}

func TestInvalidFlags(t *testing.T) {
	env := setup(t)
	offer := base58.Encode(testutil.GenerateSolanaKeys(t, 1)[0])

	for _, args := range [][]string{
		{"--borrow", "--extend-const-principal"},
		{"--borrow", "--amount", "1", "--principal-mint", offer},
		{"--borrow", "--offer", offer, "--amount", "-1", "--principal-mint", offer},
		{"--borrow", "--offer", "not-a-key", "--amount", "1", "--principal-mint", offer},
		{"--extend-const-principal", "--offer", offer},
		{"--pair", "abc"},
		{"--principal", "18446744073709551616"},
		{"unexpected"},
	} {
		assert.Error(t, env.run(args...), args)
	}
	assert.Empty(t, env.client.submitted)
}

func TestMissingRPC(t *testing.T) {
	env := setup(t)

	cmd := newRootCmd(func(string) solana.Client { return env.client }, env.out)
	cmd.SetArgs([]string{"--key", env.keyPath})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}

func TestClusterMoniker(t *testing.T) {
	env := setup(t)

	cmd := newRootCmd(func(endpoint string) solana.Client {
		env.client.endpoint = endpoint
		return env.client
	}, env.out)
	cmd.SetArgs([]string{"--rpc", "devnet", "--key", env.keyPath, "--dry-run"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, string(solana.EnvironmentDev), env.client.endpoint)
}

func TestMissingKeyFile(t *testing.T) {
	env := setup(t)
	env.keyPath = filepath.Join(t.TempDir(), "missing.json")

	assert.Error(t, env.run())
}

func TestExtendConstPrincipal_MissingLoan(t *testing.T) {
	env := setup(t)
	offer, _ := borrowFixtures(t, env)
	loan := testutil.GenerateSolanaKeys(t, 1)[0]

	err := env.run("--extend-const-principal", "--offer", base58.Encode(offer), "--loan", base58.Encode(loan))
	require.Error(t, err)
	assert.Contains(t, err.Error(), base58.Encode(loan))
	assert.Empty(t, env.client.submitted)
}
