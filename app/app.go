package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dfscoin/dfsd/domain/netparams"
	"github.com/dfscoin/dfsd/infrastructure/config"
	"github.com/dfscoin/dfsd/infrastructure/logger"
	"github.com/dfscoin/dfsd/util/panics"
	"github.com/dfscoin/dfsd/version"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

// StartApp loads the configuration from the process arguments, selects the
// network and reports the resulting setup.
func StartApp() error {
	defer panics.HandlePanic(log)
	return startApp(os.Args[1:])
}

func startApp(args []string) error {
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))

	cfg, err := config.LoadConfig(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Println(err)
			return nil
		}
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintf(os.Stderr, "Use %s -h to show usage\n", appName)
		return err
	}

	if cfg.ShowVersion {
		fmt.Println(appName, "version", version.Version())
		return nil
	}
	if cfg.DebugLevel == config.ShowSubsystemsLevel {
		logger.PrintSupportedSubsystems()
		return nil
	}

	err = os.MkdirAll(cfg.DataDir, 0700)
	if err != nil {
		err = errors.Wrapf(err, "failed to create data directory %s", cfg.DataDir)
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	// After log rotation has been initialized, the logger variables may be
	// used.
	err = logger.InitLog(cfg.LogFile(), cfg.ErrLogFile())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	defer logger.BackendLog.Close()

	return reportNetwork(cfg, netparams.DefaultSelector())
}

// reportNetwork logs the active network and the values derived from it.
func reportNetwork(cfg *config.Config, selector *netparams.Selector) error {
	params, err := selector.Current()
	if err != nil {
		log.Criticalf("Network parameters were not selected: %s", err)
		return err
	}

	log.Infof("Version %s", version.Version())
	log.Infof("Active network: %s", params.Name)
	log.Infof("Data directory: %s", cfg.DataDir)
	log.Infof("Log directory: %s", cfg.LogDir)
	if len(cfg.RPCListeners) == 0 {
		log.Infof("RPC server disabled")
	} else {
		log.Infof("RPC listeners: %s", strings.Join(cfg.RPCListeners, ", "))
	}
	return nil
}
