package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/dfscoin/dfsd/domain/netparams"
	"github.com/pkg/errors"
)

func setupTempDir(t *testing.T) (dir string, teardown func()) {
	dir, err := ioutil.TempDir("", "dfsd-config")
	if err != nil {
		t.Fatalf("Failed creating a temporary directory: %v", err)
	}
	return dir, func() { os.RemoveAll(dir) }
}

func TestLoadConfigNetworks(t *testing.T) {
	tmpDir, teardown := setupTempDir(t)
	defer teardown()

	dataDir := filepath.Join(tmpDir, "data")
	logDir := filepath.Join(tmpDir, "logs")
	baseArgs := []string{
		"--configfile", filepath.Join(tmpDir, "missing.conf"),
		"--datadir", dataDir,
		"--logdir", logDir,
	}

	tests := []struct {
		name              string
		args              []string
		expectedNet       netparams.Network
		expectedDataDir   string
		expectedListeners []string
	}{
		{
			name:              "default mainnet",
			expectedNet:       netparams.Mainnet,
			expectedDataDir:   dataDir,
			expectedListeners: []string{"localhost:9888"},
		},
		{
			name:              "testnet",
			args:              []string{"--testnet"},
			expectedNet:       netparams.Testnet,
			expectedDataDir:   filepath.Join(dataDir, "testnet4"),
			expectedListeners: []string{"localhost:9777"},
		},
		{
			name:              "regtest with listeners",
			args:              []string{"--regtest", "--rpclisten", "0.0.0.0", "--rpclisten", "127.0.0.1:1234"},
			expectedNet:       netparams.Regtest,
			expectedDataDir:   filepath.Join(dataDir, "regtest"),
			expectedListeners: []string{"0.0.0.0:9777", "127.0.0.1:1234"},
		},
		{
			name:              "testnet wins over segwittest",
			args:              []string{"--segwittest", "--testnet"},
			expectedNet:       netparams.Testnet,
			expectedDataDir:   filepath.Join(dataDir, "testnet4"),
			expectedListeners: []string{"localhost:9777"},
		},
		{
			name:            "dfstestnet without rpc",
			args:            []string{"--dfstestnet", "--norpc"},
			expectedNet:     netparams.DFSTestnet,
			expectedDataDir: filepath.Join(dataDir, "dfstestnet"),
		},
	}

	for _, test := range tests {
		selector := netparams.NewSelector()
		cfg, err := loadConfig(append(baseArgs, test.args...), selector)
		if err != nil {
			t.Errorf("%s: loadConfig: %s", test.name, err)
			continue
		}

		if cfg.NetParams().Net != test.expectedNet {
			t.Errorf("%s: expected network %s, got %s", test.name, test.expectedNet, cfg.NetParams().Net)
		}
		selected, err := selector.Current()
		if err != nil {
			t.Errorf("%s: selector is not configured: %s", test.name, err)
		} else if selected != cfg.NetParams() {
			t.Errorf("%s: selector and config disagree: %s", test.name, spew.Sdump(selected, cfg.NetParams()))
		}
		if cfg.DataDir != test.expectedDataDir {
			t.Errorf("%s: expected data dir %s, got %s", test.name, test.expectedDataDir, cfg.DataDir)
		}
		expectedLogDir := filepath.Join(logDir, cfg.NetParams().DataDirSuffix)
		if cfg.LogDir != expectedLogDir {
			t.Errorf("%s: expected log dir %s, got %s", test.name, expectedLogDir, cfg.LogDir)
		}
		if !reflect.DeepEqual(cfg.RPCListeners, test.expectedListeners) {
			t.Errorf("%s: expected RPC listeners %v, got %v", test.name, test.expectedListeners, cfg.RPCListeners)
		}
	}
}

func TestLoadConfigConflictingNetworks(t *testing.T) {
	tmpDir, teardown := setupTempDir(t)
	defer teardown()

	selector := netparams.NewSelector()
	_, err := loadConfig([]string{
		"--configfile", filepath.Join(tmpDir, "missing.conf"),
		"--datadir", tmpDir,
		"--regtest", "--testnet",
	}, selector)
	if !errors.Is(err, netparams.ErrConflictingNetworks) {
		t.Fatalf("expected ErrConflictingNetworks, got %v", err)
	}
	if selector.IsConfigured() {
		t.Errorf("selector was configured despite the conflict")
	}
}

func TestLoadConfigFile(t *testing.T) {
	tmpDir, teardown := setupTempDir(t)
	defer teardown()

	configFile := filepath.Join(tmpDir, "dfsd.conf")
	content := "segwittest=1\ndebuglevel=warn\n"
	err := ioutil.WriteFile(configFile, []byte(content), 0600)
	if err != nil {
		t.Fatalf("Failed writing config file: %v", err)
	}

	cfg, err := loadConfig([]string{
		"--configfile", configFile,
		"--datadir", tmpDir,
		"--debuglevel", "debug",
	}, netparams.NewSelector())
	if err != nil {
		t.Fatalf("loadConfig: %s", err)
	}
	if cfg.NetParams().Net != netparams.SegwitTestnet {
		t.Errorf("expected network from the config file, got %s", cfg.NetParams().Net)
	}
	if cfg.DebugLevel != "debug" {
		t.Errorf("command line did not take precedence over the config file: debuglevel %q", cfg.DebugLevel)
	}
	if cfg.DataDir != filepath.Join(tmpDir, "segwittest") {
		t.Errorf("unexpected data dir %s", cfg.DataDir)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tmpDir, teardown := setupTempDir(t)
	defer teardown()

	badConfigFile := filepath.Join(tmpDir, "bad.conf")
	err := ioutil.WriteFile(badConfigFile, []byte("nosuchoption=1\n"), 0600)
	if err != nil {
		t.Fatalf("Failed writing config file: %v", err)
	}
	missing := filepath.Join(tmpDir, "missing.conf")

	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--configfile", missing, "--simnet"}},
		{"bad config file", []string{"--configfile", badConfigFile}},
		{"bad debug level", []string{"--configfile", missing, "--debuglevel", "loud"}},
		{"bad rpc listener", []string{"--configfile", missing, "--rpclisten", "[::1"}},
		{"extra arguments", []string{"--configfile", missing, "start"}},
	}

	for _, test := range tests {
		_, err := loadConfig(append(test.args, "--datadir", tmpDir), netparams.NewSelector())
		if err == nil {
			t.Errorf("%s: loadConfig unexpectedly succeeded", test.name)
		}
	}
}

func TestLoadConfigShowVersion(t *testing.T) {
	selector := netparams.NewSelector()
	cfg, err := loadConfig([]string{"--version", "--regtest", "--testnet"}, selector)
	if err != nil {
		t.Fatalf("loadConfig: %s", err)
	}
	if !cfg.ShowVersion {
		t.Errorf("ShowVersion is not set")
	}
	if selector.IsConfigured() {
		t.Errorf("--version selected a network")
	}
}

func TestNetworkFlagsSwitch(t *testing.T) {
	networkFlags := &NetworkFlags{Regtest: true, DFSTestnet: true}
	tests := []struct {
		name     string
		expected bool
	}{
		{netparams.SwitchRegtest, true},
		{netparams.SwitchTestnet, false},
		{netparams.SwitchSegwitTest, false},
		{netparams.SwitchDFSTestnet, true},
		{"simnet", false},
	}
	for _, test := range tests {
		if networkFlags.Switch(test.name) != test.expected {
			t.Errorf("Switch(%q): expected %t", test.name, test.expected)
		}
	}

	err := networkFlags.ResolveNetwork(netparams.NewSelector())
	if err != nil {
		t.Fatalf("ResolveNetwork: %s", err)
	}
	if networkFlags.NetParams().Net != netparams.Regtest {
		t.Errorf("expected regtest, got %s", networkFlags.NetParams().Net)
	}
}

func TestNetworkFlagsResolveConflict(t *testing.T) {
	networkFlags := &NetworkFlags{Regtest: true, Testnet: true}
	selector := netparams.NewSelector()

	err := networkFlags.ResolveNetwork(selector)
	if !errors.Is(err, netparams.ErrConflictingNetworks) {
		t.Fatalf("expected ErrConflictingNetworks, got %v", err)
	}
	if networkFlags.NetParams() != nil {
		t.Errorf("a conflict set the active params to %s", spew.Sdump(networkFlags.NetParams()))
	}
	if selector.IsConfigured() {
		t.Errorf("a conflict configured the selector")
	}
}
