// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcutil"
	"github.com/dfscoin/dfsd/domain/netparams"
	"github.com/dfscoin/dfsd/infrastructure/logger"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	defaultConfigFilename = "dfsd.conf"
	defaultDataDirname    = "data"
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "dfsd.log"
	defaultErrLogFilename = "dfsd_err.log"
	defaultRPCListener    = "localhost"

	// ShowSubsystemsLevel is the --debuglevel value that lists the logging
	// subsystems instead of setting a level.
	ShowSubsystemsLevel = "show"
)

var (
	// DefaultHomeDir is the default home directory for dfsd.
	DefaultHomeDir = btcutil.AppDataDir("dfsd", false)

	defaultConfigFile = filepath.Join(DefaultHomeDir, defaultConfigFilename)
	defaultDataDir    = filepath.Join(DefaultHomeDir, defaultDataDirname)
	defaultLogDir     = filepath.Join(DefaultHomeDir, defaultLogDirname)
)

// Flags defines the configuration options for dfsd.
//
// See loadConfig for details on the configuration load process.
type Flags struct {
	ShowVersion  bool     `short:"V" long:"version" description:"Display version information and exit"`
	ConfigFile   string   `short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir      string   `short:"b" long:"datadir" description:"Directory to store data"`
	LogDir       string   `long:"logdir" description:"Directory to log output."`
	DebugLevel   string   `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	RPCListeners []string `long:"rpclisten" description:"Add an interface/port to listen for RPC connections (default port: 9888, testnet: 9777)"`
	DisableRPC   bool     `long:"norpc" description:"Disable built-in RPC server"`
	NetworkFlags
}

// Config defines the configuration options for dfsd.
//
// See loadConfig for details on the configuration load process.
type Config struct {
	*Flags
}

// LogFile returns the path of the main log file.
func (cfg *Config) LogFile() string {
	return filepath.Join(cfg.LogDir, defaultLogFilename)
}

// ErrLogFile returns the path of the warnings and errors log file.
func (cfg *Config) ErrLogFile() string {
	return filepath.Join(cfg.LogDir, defaultErrLogFilename)
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(DefaultHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// namespacedDir appends the network data directory suffix to dir. An empty
// suffix leaves dir as is.
func namespacedDir(dir string, params *netparams.Params) string {
	dir = cleanAndExpandPath(dir)
	if params.DataDirSuffix == "" {
		return dir
	}
	return filepath.Join(dir, params.DataDirSuffix)
}

// newConfigParser returns a new command line flags parser.
func newConfigParser(cfgFlags *Flags, options flags.Options) *flags.Parser {
	return flags.NewParser(cfgFlags, options)
}

// LoadConfig parses args and the configuration file and selects the
// requested network on the process-wide selector.
func LoadConfig(args []string) (*Config, error) {
	return loadConfig(args, netparams.DefaultSelector())
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
// 	1) Start with a default config with sane settings
// 	2) Pre-parse the command line to check for an alternative config file
// 	3) Load configuration file overwriting defaults with any specified options
// 	4) Parse CLI options and overwrite/add any specified options
// 	5) Set the debug levels, so that the steps below are logged
// 	6) Select the network and namespace the data and log directories by it
//
// Command line options always take precedence. If --version is given, the
// pre-parsed flags are returned before anything else is done.
func loadConfig(args []string, selector *netparams.Selector) (*Config, error) {
	funcName := "loadConfig"

	// Default config.
	cfgFlags := Flags{
		ConfigFile: defaultConfigFile,
		DataDir:    defaultDataDir,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
	}

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified. Any errors aside from the
	// help message error can be ignored here since they will be caught by
	// the final parse below.
	preCfg := cfgFlags
	preParser := newConfigParser(&preCfg, flags.HelpFlag)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil, err
		}
	}
	if preCfg.ShowVersion {
		return &Config{Flags: &preCfg}, nil
	}

	// Load additional config from file. A missing file is not an error.
	var configFileError error
	parser := newConfigParser(&cfgFlags, flags.HelpFlag|flags.PassDoubleDash)
	err = flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
	if err != nil {
		if _, ok := err.(*os.PathError); !ok {
			return nil, errors.Wrapf(err, "%s: error parsing config file %s", funcName, preCfg.ConfigFile)
		}
		configFileError = err
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if len(remainingArgs) > 0 {
		return nil, errors.Errorf("%s: unexpected arguments %v", funcName, remainingArgs)
	}

	cfg := &Config{Flags: &cfgFlags}

	// Entries logged from here on are kept by the backend until the log
	// files are opened.
	if cfg.DebugLevel != ShowSubsystemsLevel {
		err = logger.ParseAndSetDebugLevels(cfg.DebugLevel)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", funcName)
		}
	}
	onEnd := logger.LogAndMeasureExecutionTime(log, funcName)
	defer onEnd()

	if configFileError != nil {
		log.Debugf("Config file %s not loaded: %s", preCfg.ConfigFile, configFileError)
	}

	err = cfg.ResolveNetwork(selector)
	if err != nil {
		return nil, err
	}

	// Namespace the data and log directories per network, so that data
	// of different networks never mixes.
	cfg.DataDir = namespacedDir(cfg.DataDir, cfg.NetParams())
	cfg.LogDir = namespacedDir(cfg.LogDir, cfg.NetParams())

	if cfg.DisableRPC {
		cfg.RPCListeners = nil
	} else {
		if len(cfg.RPCListeners) == 0 {
			cfg.RPCListeners = []string{defaultRPCListener}
		}
		cfg.RPCListeners, err = cfg.NetParams().NormalizeRPCServerAddresses(cfg.RPCListeners)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: invalid --rpclisten", funcName)
		}
	}

	return cfg, nil
}
