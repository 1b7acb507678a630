package submitter

import (
	"github.com/lendy-labs/lendy-go/pkg/config"
	"github.com/lendy-labs/lendy-go/pkg/config/env"
	"github.com/lendy-labs/lendy-go/pkg/config/memory"
	"github.com/lendy-labs/lendy-go/pkg/config/wrapper"
)

const (
	envConfigPrefix = "LENDY_SUBMITTER_"

	ComputeUnitLimitConfigEnvName = envConfigPrefix + "COMPUTE_UNIT_LIMIT"
	defaultComputeUnitLimit       = 1_000_000

	// ComputeUnitPriceConfigEnvName sets a priority fee in micro-lamports. Zero
	// leaves the price instruction out.
	ComputeUnitPriceConfigEnvName = envConfigPrefix + "COMPUTE_UNIT_PRICE"
	defaultComputeUnitPrice       = 0

	CommitmentConfigEnvName = envConfigPrefix + "COMMITMENT"
	defaultCommitment       = "confirmed"
)

type conf struct {
	computeUnitLimit config.Uint64
	computeUnitPrice config.Uint64
	commitment       config.String
}

// ConfigProvider defines how config values are pulled
type ConfigProvider func() *conf

// WithEnvConfigs returns configuration pulled from environment variables
func WithEnvConfigs() ConfigProvider {
	return func() *conf {
		return &conf{
			computeUnitLimit: env.NewUint64Config(ComputeUnitLimitConfigEnvName, defaultComputeUnitLimit),
			computeUnitPrice: env.NewUint64Config(ComputeUnitPriceConfigEnvName, defaultComputeUnitPrice),
			commitment:       env.NewStringConfig(CommitmentConfigEnvName, defaultCommitment),
		}
	}
}

type testOverrides struct {
	computeUnitLimit uint64
	computeUnitPrice uint64
	commitment       string
}

func withManualTestOverrides(overrides *testOverrides) ConfigProvider {
	return func() *conf {
		c := &conf{
			computeUnitLimit: wrapper.NewUint64Config(memory.NewConfig(nil), defaultComputeUnitLimit),
			computeUnitPrice: wrapper.NewUint64Config(memory.NewConfig(nil), defaultComputeUnitPrice),
			commitment:       wrapper.NewStringConfig(memory.NewConfig(nil), defaultCommitment),
		}
		if overrides.computeUnitLimit > 0 {
			c.computeUnitLimit = wrapper.NewUint64Config(memory.NewConfig(overrides.computeUnitLimit), defaultComputeUnitLimit)
		}
		if overrides.computeUnitPrice > 0 {
			c.computeUnitPrice = wrapper.NewUint64Config(memory.NewConfig(overrides.computeUnitPrice), defaultComputeUnitPrice)
		}
		if len(overrides.commitment) > 0 {
			c.commitment = wrapper.NewStringConfig(memory.NewConfig(overrides.commitment), defaultCommitment)
		}
		return c
	}
}
