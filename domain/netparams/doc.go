/*
Package netparams defines the networks dfsd can run on and tracks which one
is active.

Each network has a flat, immutable Params record. Records are declared as a
base network plus overrides and resolved once when the package is loaded:

	mainnet     RPC port 9888, base data directory
	testnet     mainnet with RPC port 9777, suffix "testnet4"
	regtest     testnet with suffix "regtest"
	unittest    mainnet with suffix "unittest"
	segwittest  mainnet with RPC port 9666, suffix "segwittest"
	dfstestnet  mainnet with RPC port 9555, suffix "dfstestnet"

Startup resolves the operator's switches and selects the result:

	params, err := netparams.SelectFromSwitches(netparams.DefaultSelector(), switches)
	if errors.Is(err, netparams.ErrConflictingNetworks) {
		// report the configuration error and stop
	}

Code that was handed a *Selector or *Params should use those. Code that
cannot be reached by injection may call ActiveParams, which returns
ErrUnconfigured until a network was selected.
*/
package netparams
