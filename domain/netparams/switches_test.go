package netparams

import (
	"testing"

	"github.com/pkg/errors"
)

func TestResolveNetwork(t *testing.T) {
	tests := []struct {
		name     string
		switches Switches
		expected Network
	}{
		{"no switches", Switches{}, Mainnet},
		{"all false", Switches{SwitchRegtest: false, SwitchTestnet: false}, Mainnet},
		{"regtest", Switches{SwitchRegtest: true}, Regtest},
		{"testnet", Switches{SwitchTestnet: true}, Testnet},
		{"segwittest", Switches{SwitchSegwitTest: true}, SegwitTestnet},
		{"dfstestnet", Switches{SwitchDFSTestnet: true}, DFSTestnet},
		{"regtest before auxiliary", Switches{
			SwitchRegtest: true, SwitchSegwitTest: true, SwitchDFSTestnet: true,
		}, Regtest},
		{"testnet before segwittest", Switches{SwitchTestnet: true, SwitchSegwitTest: true}, Testnet},
		{"segwittest before dfstestnet", Switches{SwitchSegwitTest: true, SwitchDFSTestnet: true}, SegwitTestnet},
		{"unknown switch", Switches{"simnet": true}, Mainnet},
	}

	for _, test := range tests {
		net, err := ResolveNetwork(test.switches)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", test.name, err)
			continue
		}
		if net != test.expected {
			t.Errorf("%s: expected %s, got %s", test.name, test.expected, net)
		}
	}
}

func TestResolveNetworkConflict(t *testing.T) {
	tests := []Switches{
		{SwitchRegtest: true, SwitchTestnet: true},
		{SwitchRegtest: true, SwitchTestnet: true, SwitchSegwitTest: true},
		{SwitchRegtest: true, SwitchTestnet: true, SwitchDFSTestnet: true, SwitchSegwitTest: true},
	}

	for i, switches := range tests {
		net, err := ResolveNetwork(switches)
		if !errors.Is(err, ErrConflictingNetworks) {
			t.Errorf("test %d: expected ErrConflictingNetworks, got %v", i, err)
		}
		var conflictErr *ConflictError
		if !errors.As(err, &conflictErr) {
			t.Fatalf("test %d: expected a *ConflictError, got %T", i, err)
		}
		if conflictErr.Switches != [2]string{SwitchRegtest, SwitchTestnet} {
			t.Errorf("test %d: unexpected conflicting switches %v", i, conflictErr.Switches)
		}
		if net.IsValid() {
			t.Errorf("test %d: conflict returned the valid network %s", i, net)
		}
	}
}

func TestSelectFromSwitches(t *testing.T) {
	selector := NewSelector()

	params, err := SelectFromSwitches(selector, Switches{SwitchTestnet: true})
	if err != nil {
		t.Fatalf("SelectFromSwitches: %s", err)
	}
	if params.Net != Testnet || params.DataDirSuffix != "testnet4" {
		t.Errorf("unexpected params %+v", *params)
	}
	if params.RPCPort == MustParamsForNetwork(Mainnet).RPCPort {
		t.Errorf("testnet RPC port equals mainnet's")
	}

	_, err = SelectFromSwitches(selector, Switches{SwitchTestnet: true, SwitchRegtest: true})
	if !errors.Is(err, ErrConflictingNetworks) {
		t.Fatalf("expected ErrConflictingNetworks, got %v", err)
	}
	current, err := selector.Current()
	if err != nil {
		t.Fatalf("Current: %s", err)
	}
	if current.Net != Testnet {
		t.Errorf("a conflicting resolution changed the selection to %s", current.Net)
	}
}
