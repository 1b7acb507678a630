package solana

import "strings"

type Environment string

const (
	EnvironmentDev  Environment = "https://api.devnet.solana.com"
	EnvironmentTest Environment = "https://api.testnet.solana.com"
	EnvironmentProd Environment = "https://api.mainnet-beta.solana.com"
)

var environments = map[string]Environment{
	"devnet":       EnvironmentDev,
	"testnet":      EnvironmentTest,
	"mainnet":      EnvironmentProd,
	"mainnet-beta": EnvironmentProd,
}

// ResolveEndpoint maps a cluster moniker to its public RPC endpoint. Anything
// else is returned as is.
func ResolveEndpoint(endpoint string) string {
	if env, ok := environments[strings.ToLower(endpoint)]; ok {
		return string(env)
	}
	return endpoint
}
