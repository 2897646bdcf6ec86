package netparams

// Names of the switches that choose a network.
const (
	SwitchRegtest    = "regtest"
	SwitchTestnet    = "testnet"
	SwitchSegwitTest = "segwittest"
	SwitchDFSTestnet = "dfstestnet"
)

// SwitchLookup reports the value of a boolean network switch by name. Unknown
// names report false.
type SwitchLookup interface {
	Switch(name string) bool
}

// Switches is a SwitchLookup backed by a map.
type Switches map[string]bool

// Switch implements SwitchLookup.
func (s Switches) Switch(name string) bool {
	return s[name]
}

// ResolveNetwork returns the network the given switches ask for, defaulting
// to Mainnet.
//
// Only regtest and testnet are mutually exclusive; setting both returns a
// *ConflictError. Any other combination is resolved by priority: regtest,
// testnet, segwittest, dfstestnet.
func ResolveNetwork(switches SwitchLookup) (Network, error) {
	regtest := switches.Switch(SwitchRegtest)
	testnet := switches.Switch(SwitchTestnet)

	switch {
	case regtest && testnet:
		return NumNetworks, &ConflictError{Switches: [2]string{SwitchRegtest, SwitchTestnet}}
	case regtest:
		return Regtest, nil
	case testnet:
		return Testnet, nil
	case switches.Switch(SwitchSegwitTest):
		return SegwitTestnet, nil
	case switches.Switch(SwitchDFSTestnet):
		return DFSTestnet, nil
	default:
		return Mainnet, nil
	}
}

// SelectFromSwitches resolves the switches and selects the result on
// selector. On error selector is left unchanged.
func SelectFromSwitches(selector *Selector, switches SwitchLookup) (*Params, error) {
	net, err := ResolveNetwork(switches)
	if err != nil {
		return nil, err
	}
	selector.Select(net)
	return selector.Current()
}
