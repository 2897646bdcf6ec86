package panics

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/dfscoin/dfsd/infrastructure/logger"
)

const exitHandlerTimeout = 5 * time.Second

// exitFunc is replaced in tests.
var exitFunc = os.Exit

// HandlePanic recovers a panic, logs it together with the stack trace and
// exits the process. It must be called directly by defer.
func HandlePanic(log *logger.Logger) {
	err := recover()
	if err == nil {
		return
	}

	reason := fmt.Sprintf("Fatal error: %+v", err)
	exit(log, reason, debug.Stack())
}

// exit logs reason and the stack trace if not nil, waits for the log
// backend to flush and exits.
func exit(log *logger.Logger, reason string, stackTrace []byte) {
	exitHandlerDone := make(chan struct{})
	go func() {
		log.Criticalf("Exiting: %s", reason)
		if stackTrace != nil {
			log.Criticalf("Stack trace: %s", stackTrace)
		}
		if log.Backend().IsRunning() {
			log.Backend().Close()
		} else {
			fmt.Fprintln(os.Stderr, reason)
		}
		close(exitHandlerDone)
	}()

	select {
	case <-time.After(exitHandlerTimeout):
		fmt.Fprintln(os.Stderr, "Couldn't exit gracefully.")
	case <-exitHandlerDone:
	}
	exitFunc(1)
}
