package netparams

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrConflictingNetworks is wrapped by ConflictError. Use errors.Is to
	// test for it.
	ErrConflictingNetworks = errors.New("conflicting network switches")

	// ErrUnconfigured is returned when the active network is queried before
	// one was selected.
	ErrUnconfigured = errors.New("network parameters are not configured")

	// ErrInvalidNetwork is returned for NumNetworks and any value outside the
	// catalog.
	ErrInvalidNetwork = errors.New("invalid network")
)

// ConflictError is returned by ResolveNetwork when two mutually exclusive
// network switches are set together.
type ConflictError struct {
	Switches [2]string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("--%s and --%s cannot be used together, please choose only one network",
		e.Switches[0], e.Switches[1])
}

// Unwrap makes errors.Is(err, ErrConflictingNetworks) hold.
func (e *ConflictError) Unwrap() error {
	return ErrConflictingNetworks
}
