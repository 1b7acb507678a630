package main

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"io"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	xrate "golang.org/x/time/rate"

	"github.com/lendy-labs/lendy-go/pkg/keyfile"
	"github.com/lendy-labs/lendy-go/pkg/lendy/builder"
	"github.com/lendy-labs/lendy-go/pkg/lendy/reader"
	"github.com/lendy-labs/lendy-go/pkg/lendy/submitter"
	"github.com/lendy-labs/lendy-go/pkg/rate"
	"github.com/lendy-labs/lendy-go/pkg/solana"
	"github.com/lendy-labs/lendy-go/pkg/solana/lendy"
	"github.com/lendy-labs/lendy-go/pkg/solana/token"
)

type clientFactory func(endpoint string) solana.Client

func newRootCmd(newClient clientFactory, out io.Writer) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "lendy-cli",
		Short: "Make offers, borrow and extend loans on the Lendy program",
		Long: "Without --borrow or --extend-const-principal a lending offer is made on --pair.\n" +
			"Every flag can also be set through a LENDY_ prefixed environment variable.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			configureLogger(cfg.logLevel)

			app, err := newApp(cfg, newClient, out)
			if err != nil {
				return err
			}
			return app.run(cmd.Context())
		},
	}

	registerFlags(cmd.Flags())
	cmd.MarkFlagsMutuallyExclusive(borrowFlag, extendFlag)
	if err := bindConfig(v, cmd.Flags()); err != nil {
		panic(err)
	}

	return cmd
}

type app struct {
	log       *logrus.Entry
	cfg       *cliConfig
	out       io.Writer
	keypair   *keyfile.Keypair
	reader    *reader.Reader
	builder   *builder.Builder
	submitter *submitter.Submitter
}

func newApp(cfg *cliConfig, newClient clientFactory, out io.Writer) (*app, error) {
	keypair, err := keyfile.Load(cfg.key)
	if err != nil {
		return nil, err
	}

	var limiter rate.Limiter = &rate.NoLimiter{}
	if cfg.rpcLimit > 0 {
		limiter = rate.NewLocalRateLimiter(xrate.Limit(cfg.rpcLimit))
	}

	client := newClient(cfg.rpc)
	r := reader.New(client, reader.WithLimiter(limiter))

	return &app{
		log:       logrus.StandardLogger().WithField("type", "lendy-cli"),
		cfg:       cfg,
		out:       out,
		keypair:   keypair,
		reader:    r,
		builder:   builder.New(r, keypair.PublicKey()),
		submitter: submitter.New(client, keypair.PrivateKey(), submitter.WithEnvConfigs()),
	}, nil
}

func (a *app) run(ctx context.Context) error {
	a.log.WithField("authority", a.keypair.String()).Debug("loaded key")

	var instructions []solana.Instruction
	var err error
	switch a.cfg.mode {
	case modeBorrow:
		instructions, err = a.borrow(ctx)
	case modeExtendConstPrincipal:
		instructions, err = a.extendConstPrincipal(ctx)
	default:
		instructions, err = a.makeOffer(ctx)
	}
	if err != nil {
		return err
	}

	return a.execute(ctx, instructions)
}

func (a *app) makeOffer(ctx context.Context) ([]solana.Instruction, error) {
	user, err := a.builder.UserAddress()
	if err != nil {
		return nil, err
	}

	exists, err := a.reader.Exists(ctx, user)
	if err != nil {
		return nil, err
	}

	var instructions []solana.Instruction
	if !exists {
		a.log.WithField("user", keyString(user)).Info("user account missing, creating it")

		createUser, err := a.builder.CreateUser("", nil)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, createUser)
	}

	makeOffer, err := a.builder.MakeOffer(
		a.cfg.pair,
		a.cfg.principal,
		a.cfg.collateral,
		lendy.NewClientIdFromString(a.cfg.clientOfferUUID),
	)
	if err != nil {
		return nil, err
	}
	return append(instructions, makeOffer), nil
}

// borrow creates the borrower's principal token account if needed, then
// borrows. The account's mint is the one the offer's pair lends, which Borrow
// also resolves; --principal-mint only cross-checks it.
func (a *app) borrow(ctx context.Context) ([]solana.Instruction, error) {
	authority := a.keypair.PublicKey()

	offer, err := a.reader.GetOffer(ctx, a.cfg.offer)
	if err != nil {
		return nil, err
	}
	pair, err := a.reader.GetPair(ctx, offer.Pair)
	if err != nil {
		return nil, err
	}

	if len(a.cfg.principalMint) > 0 && !pair.PrincipalMint.Equal(a.cfg.principalMint) {
		return nil, errors.Errorf(
			"--%s %s does not match the principal mint %s of pair %s",
			principalMintFlag,
			keyString(a.cfg.principalMint),
			keyString(pair.PrincipalMint),
			keyString(offer.Pair),
		)
	}

	createAta, ata, err := token.CreateAssociatedTokenAccountIdempotent(authority, authority, pair.PrincipalMint)
	if err != nil {
		return nil, err
	}

	bulkUuid, clientLoanId := a.clientIds()
	borrow, err := a.builder.Borrow(ctx, a.cfg.offer, a.cfg.amount, bulkUuid, clientLoanId)
	if err != nil {
		return nil, err
	}

	a.log.WithFields(logrus.Fields{
		"principal_wallet": keyString(ata),
		"bulk_uuid":        bulkUuid.String(),
		"client_loan_id":   clientLoanId.String(),
	}).Info("borrowing")

	return []solana.Instruction{createAta, borrow}, nil
}

func (a *app) extendConstPrincipal(ctx context.Context) ([]solana.Instruction, error) {
	bulkUuid, clientLoanId := a.clientIds()
	extend, err := a.builder.ExtendConstPrincipal(ctx, a.cfg.loan, a.cfg.offer, bulkUuid, clientLoanId)
	if err != nil {
		return nil, err
	}

	a.log.WithFields(logrus.Fields{
		"bulk_uuid":      bulkUuid.String(),
		"client_loan_id": clientLoanId.String(),
	}).Info("extending loan")

	return []solana.Instruction{extend}, nil
}

func (a *app) clientIds() (bulkUuid, clientLoanId lendy.ClientId) {
	bulkUuid = lendy.NewRandomClientId()
	if len(a.cfg.uuid) > 0 {
		bulkUuid = lendy.NewClientIdFromString(a.cfg.uuid)
	}

	clientLoanId = lendy.NewRandomClientId()
	if len(a.cfg.clientLoanUUID) > 0 {
		clientLoanId = lendy.NewClientIdFromString(a.cfg.clientLoanUUID)
	}
	return bulkUuid, clientLoanId
}

func (a *app) execute(ctx context.Context, instructions []solana.Instruction) error {
	if a.cfg.dryRun {
		txn, err := a.submitter.Build(ctx, instructions...)
		if err != nil {
			return err
		}

		for i := range txn.Message.Instructions {
			fmt.Fprintf(a.out, "instruction %d: %s\n", i, describe(txn.Message, i))
		}
		fmt.Fprint(a.out, txn.String())
		return nil
	}

	sig, err := a.submitter.Submit(ctx, instructions...)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, sig.String())
	return nil
}

func keyString(key ed25519.PublicKey) string {
	return base58.Encode(key)
}
