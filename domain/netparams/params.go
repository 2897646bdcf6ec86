package netparams

import (
	"strconv"

	"github.com/dfscoin/dfsd/util/network"
)

// Params is the flat, immutable set of parameters of a single network.
// Params values handed out by this package point into the catalog and must
// not be modified.
type Params struct {
	// Net identifies the network.
	Net Network

	// Name is the human-readable name of the network.
	Name string

	// RPCPort is the default port of the RPC server.
	RPCPort uint16

	// DataDirSuffix is the name of the subdirectory of the data directory
	// used by this network. An empty suffix means the base directory.
	DataDirSuffix string
}

// DefaultRPCPort returns RPCPort in the string form used by address helpers.
func (p *Params) DefaultRPCPort() string {
	return strconv.Itoa(int(p.RPCPort))
}

// NormalizeRPCServerAddresses returns addrs with the network's default RPC
// port appended to every address that has none, and duplicates removed.
func (p *Params) NormalizeRPCServerAddresses(addrs []string) ([]string, error) {
	return network.NormalizeAddresses(addrs, p.DefaultRPCPort())
}
