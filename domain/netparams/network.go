package netparams

import (
	"fmt"

	"github.com/pkg/errors"
)

// Network identifies one of the networks dfsd can run on. The numeric values
// are shared with other subsystems and must never be renumbered.
type Network uint8

// Networks known to the catalog.
const (
	// Mainnet is the production network.
	Mainnet Network = iota

	// Testnet is the public test network.
	Testnet

	// Regtest is the private regression test network.
	Regtest

	// Unittest is the network used by in-process unit tests.
	Unittest

	// SegwitTestnet is the auxiliary segregated witness test network.
	SegwitTestnet

	// DFSTestnet is the auxiliary DFS test network.
	DFSTestnet

	// NOTE: NumNetworks must always come last. It is the number of defined
	// networks and is never a valid network by itself.

	// NumNetworks is the number of networks in the catalog.
	NumNetworks
)

var networkNames = [NumNetworks]string{
	Mainnet:       "mainnet",
	Testnet:       "testnet",
	Regtest:       "regtest",
	Unittest:      "unittest",
	SegwitTestnet: "segwittest",
	DFSTestnet:    "dfstestnet",
}

// IsValid returns whether net names a profile in the catalog.
func (net Network) IsValid() bool {
	return net < NumNetworks
}

// String returns the catalog name of the network.
func (net Network) String() string {
	if !net.IsValid() {
		return fmt.Sprintf("Network(%d)", uint8(net))
	}
	return networkNames[net]
}

// ParseNetwork returns the network with the given catalog name.
func ParseNetwork(name string) (Network, error) {
	for net, netName := range networkNames {
		if netName == name {
			return Network(net), nil
		}
	}
	return NumNetworks, errors.Errorf("unknown network %q", name)
}
