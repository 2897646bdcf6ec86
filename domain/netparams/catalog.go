package netparams

import (
	"fmt"

	"github.com/pkg/errors"
)

// derivation describes a network as a base network plus overrides. A
// network with hasBase false starts from the zero Params.
type derivation struct {
	net      Network
	base     Network
	hasBase  bool
	override func(params *Params)
}

// derivations must list every network after its base.
var derivations = []derivation{
	{
		net: Mainnet,
		override: func(params *Params) {
			params.RPCPort = 9888
			params.DataDirSuffix = ""
		},
	},
	{
		net: Testnet, base: Mainnet, hasBase: true,
		override: func(params *Params) {
			params.RPCPort = 9777
			params.DataDirSuffix = "testnet4"
		},
	},
	{
		// Regtest keeps the Testnet RPC port.
		net: Regtest, base: Testnet, hasBase: true,
		override: func(params *Params) {
			params.DataDirSuffix = "regtest"
		},
	},
	{
		// Unittest overrides only the data directory. Its RPC port is
		// mainnet's on purpose; do not give it one of its own.
		net: Unittest, base: Mainnet, hasBase: true,
		override: func(params *Params) {
			params.DataDirSuffix = "unittest"
		},
	},
	{
		net: SegwitTestnet, base: Mainnet, hasBase: true,
		override: func(params *Params) {
			params.RPCPort = 9666
			params.DataDirSuffix = "segwittest"
		},
	},
	{
		net: DFSTestnet, base: Mainnet, hasBase: true,
		override: func(params *Params) {
			params.RPCPort = 9555
			params.DataDirSuffix = "dfstestnet"
		},
	},
}

// catalog holds the resolved parameters of every network, indexed by
// Network. It is written once during package initialization.
var catalog = mustBuildCatalog(derivations)

// buildCatalog resolves derivations into flat records. Every network must be
// defined exactly once and only after its base.
func buildCatalog(derivations []derivation) ([NumNetworks]Params, error) {
	var resolved [NumNetworks]Params
	var defined [NumNetworks]bool

	for _, d := range derivations {
		if !d.net.IsValid() {
			return resolved, errors.Wrapf(ErrInvalidNetwork, "derivation for %s", d.net)
		}
		if defined[d.net] {
			return resolved, errors.Errorf("network %s is defined more than once", d.net)
		}

		var params Params
		if d.hasBase {
			if !d.base.IsValid() || !defined[d.base] {
				return resolved, errors.Errorf("network %s derives from %s which is not defined before it",
					d.net, d.base)
			}
			params = resolved[d.base]
		}
		if d.override != nil {
			d.override(&params)
		}
		params.Net = d.net
		params.Name = d.net.String()

		resolved[d.net] = params
		defined[d.net] = true
	}

	for net, ok := range defined {
		if !ok {
			return resolved, errors.Errorf("network %s has no parameters", Network(net))
		}
	}
	return resolved, nil
}

func mustBuildCatalog(derivations []derivation) [NumNetworks]Params {
	resolved, err := buildCatalog(derivations)
	if err != nil {
		panic(fmt.Sprintf("failed building the network catalog: %s", err))
	}
	return resolved
}

// ParamsForNetwork returns the parameters of net.
func ParamsForNetwork(net Network) (*Params, error) {
	if !net.IsValid() {
		return nil, errors.Wrapf(ErrInvalidNetwork, "%s", net)
	}
	return &catalog[net], nil
}

// MustParamsForNetwork returns the parameters of net and panics if net is not
// in the catalog. Passing an invalid network is a programming error.
func MustParamsForNetwork(net Network) *Params {
	params, err := ParamsForNetwork(net)
	if err != nil {
		panic(err)
	}
	return params
}

// Networks returns every network in the catalog in enum order.
func Networks() []Network {
	networks := make([]Network, 0, NumNetworks)
	for net := Network(0); net < NumNetworks; net++ {
		networks = append(networks, net)
	}
	return networks
}
