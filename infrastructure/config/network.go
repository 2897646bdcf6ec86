package config

import (
	"github.com/dfscoin/dfsd/domain/netparams"
)

// NetworkFlags holds the network configuration, that is which network is selected.
type NetworkFlags struct {
	Testnet    bool `long:"testnet" description:"Use the test network"`
	Regtest    bool `long:"regtest" description:"Use the regression test network"`
	SegwitTest bool `long:"segwittest" description:"Use the segregated witness test network"`
	DFSTestnet bool `long:"dfstestnet" description:"Use the DFS test network"`

	ActiveNetParams *netparams.Params
}

// Switch implements netparams.SwitchLookup.
func (networkFlags *NetworkFlags) Switch(name string) bool {
	switch name {
	case netparams.SwitchTestnet:
		return networkFlags.Testnet
	case netparams.SwitchRegtest:
		return networkFlags.Regtest
	case netparams.SwitchSegwitTest:
		return networkFlags.SegwitTest
	case netparams.SwitchDFSTestnet:
		return networkFlags.DFSTestnet
	default:
		return false
	}
}

// ResolveNetwork selects the network requested by the flags on selector and
// sets ActiveNetParams accordingly. It returns an error wrapping
// netparams.ErrConflictingNetworks if --regtest and --testnet were both given.
// Reporting the error is left to the caller.
func (networkFlags *NetworkFlags) ResolveNetwork(selector *netparams.Selector) error {
	params, err := netparams.SelectFromSwitches(selector, networkFlags)
	if err != nil {
		return err
	}
	networkFlags.ActiveNetParams = params
	log.Infof("Using network %s", params.Name)
	return nil
}

// NetParams returns the ActiveNetParams
func (networkFlags *NetworkFlags) NetParams() *netparams.Params {
	return networkFlags.ActiveNetParams
}
