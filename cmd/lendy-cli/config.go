package main

import (
	"crypto/ed25519"
	"strconv"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lendy-labs/lendy-go/pkg/solana"
)

const (
	envPrefix = "LENDY"

	rpcFlag      = "rpc"
	rpcLimitFlag = "rpc-limit"
	keyFlag      = "key"

	borrowFlag = "borrow"
	extendFlag = "extend-const-principal"

	offerFlag          = "offer"
	loanFlag           = "loan"
	amountFlag         = "amount"
	uuidFlag           = "uuid"
	clientLoanUUIDFlag = "client-loan-uuid"
	principalMintFlag  = "principal-mint"

	pairFlag            = "pair"
	principalFlag       = "principal"
	collateralFlag      = "collateral"
	clientOfferUUIDFlag = "client-offer-uuid"

	dryRunFlag   = "dry-run"
	logLevelFlag = "log-level"
)

type mode int

const (
	modeMakeOffer mode = iota
	modeBorrow
	modeExtendConstPrincipal
)

type cliConfig struct {
	rpc      string
	rpcLimit float64
	key      string
	mode     mode
	dryRun   bool
	logLevel string

	offer          ed25519.PublicKey
	loan           ed25519.PublicKey
	amount         uint64
	uuid           string
	clientLoanUUID string
	principalMint  ed25519.PublicKey

	pair            ed25519.PublicKey
	principal       uint64
	collateral      uint64
	clientOfferUUID string
}

func registerFlags(flags *pflag.FlagSet) {
	flags.String(rpcFlag, "", "RPC node URL, or one of devnet, testnet, mainnet")
	flags.Float64(rpcLimitFlag, 10, "maximum RPC reads per second, 0 for unlimited")
	flags.String(keyFlag, "./lender.json", "private key file")

	flags.Bool(borrowFlag, false, "borrow from an offer")
	flags.Bool(extendFlag, false, "extend a loan through an offer, keeping the principal")

	flags.String(offerFlag, "", "offer address")
	flags.String(loanFlag, "", "loan address")
	flags.String(amountFlag, "", "principal amount to borrow")
	flags.String(uuidFlag, "", "bulk uuid, random when empty")
	flags.String(clientLoanUUIDFlag, "", "client loan id, random when empty")
	flags.String(principalMintFlag, "", "expected principal mint of the offer's pair, checked before borrowing")

	flags.String(pairFlag, "3VZpYYp2DnjTDRC1qfy8Y9KKgV7QVGfrkViLg1BuhKiZ", "pair address")
	flags.String(principalFlag, "49400000000", "offered principal")
	flags.String(collateralFlag, "1000000000", "requested collateral")
	flags.String(clientOfferUUIDFlag, "83ebbdaaf2d24cce", "client offer id")

	flags.Bool(dryRunFlag, false, "print the signed transaction instead of sending it")
	flags.String(logLevelFlag, "info", "log level")
}

// bindConfig layers LENDY_* environment variables under the command line
// flags, so LENDY_CLIENT_OFFER_UUID backs --client-offer-uuid.
func bindConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v.BindPFlags(flags)
}

func loadConfig(v *viper.Viper) (*cliConfig, error) {
	cfg := &cliConfig{
		rpc:             solana.ResolveEndpoint(v.GetString(rpcFlag)),
		rpcLimit:        v.GetFloat64(rpcLimitFlag),
		key:             v.GetString(keyFlag),
		dryRun:          v.GetBool(dryRunFlag),
		logLevel:        v.GetString(logLevelFlag),
		uuid:            v.GetString(uuidFlag),
		clientLoanUUID:  v.GetString(clientLoanUUIDFlag),
		clientOfferUUID: v.GetString(clientOfferUUIDFlag),
	}

	if len(cfg.rpc) == 0 {
		return nil, errors.Errorf("--%s is required", rpcFlag)
	}

	borrow, extend := v.GetBool(borrowFlag), v.GetBool(extendFlag)
	switch {
	case borrow && extend:
		return nil, errors.Errorf("--%s and --%s are mutually exclusive", borrowFlag, extendFlag)
	case borrow:
		cfg.mode = modeBorrow
	case extend:
		cfg.mode = modeExtendConstPrincipal
	default:
		cfg.mode = modeMakeOffer
	}

	var err error
	switch cfg.mode {
	case modeBorrow:
		if cfg.offer, err = requireKey(v, offerFlag); err != nil {
			return nil, err
		}
		if len(v.GetString(principalMintFlag)) > 0 {
			if cfg.principalMint, err = requireKey(v, principalMintFlag); err != nil {
				return nil, err
			}
		}
		if cfg.amount, err = requireAmount(v, amountFlag); err != nil {
			return nil, err
		}
	case modeExtendConstPrincipal:
		if cfg.loan, err = requireKey(v, loanFlag); err != nil {
			return nil, err
		}
		if cfg.offer, err = requireKey(v, offerFlag); err != nil {
			return nil, err
		}
	default:
		if cfg.pair, err = requireKey(v, pairFlag); err != nil {
			return nil, err
		}
		if cfg.principal, err = requireAmount(v, principalFlag); err != nil {
			return nil, err
		}
		if cfg.collateral, err = requireAmount(v, collateralFlag); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func requireKey(v *viper.Viper, name string) (ed25519.PublicKey, error) {
	value := v.GetString(name)
	if len(value) == 0 {
		return nil, errors.Errorf("--%s is required", name)
	}

	decoded, err := base58.Decode(value)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --%s", name)
	}
	if len(decoded) != ed25519.PublicKeySize {
		return nil, errors.Errorf("invalid --%s: expected %d bytes, got %d", name, ed25519.PublicKeySize, len(decoded))
	}
	return decoded, nil
}

// requireAmount parses amounts as decimal strings to keep full u64 precision.
func requireAmount(v *viper.Viper, name string) (uint64, error) {
	value := v.GetString(name)
	if len(value) == 0 {
		return 0, errors.Errorf("--%s is required", name)
	}

	amount, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid --%s", name)
	}
	return amount, nil
}

func configureLogger(level string) {
	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		logrus.StandardLogger().WithField("log_level", level).Warn("unknown log level, ignoring")
		return
	}
	logrus.SetLevel(parsed)
}
