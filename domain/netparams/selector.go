package netparams

import (
	"sync/atomic"
)

// Selector holds the network chosen for this process. The zero value is
// unselected and ready for use.
//
// Select is expected to run once during startup, before other goroutines
// read the selection. Current and IsConfigured are safe to call from any
// goroutine.
type Selector struct {
	active atomic.Value // *Params
}

// NewSelector returns a new unselected Selector.
func NewSelector() *Selector {
	return &Selector{}
}

// Select makes the catalog parameters of net the active ones, replacing any
// previous selection. It panics if net is not in the catalog.
func (s *Selector) Select(net Network) {
	params := MustParamsForNetwork(net)
	s.active.Store(params)
	log.Debugf("Selected network %s (RPC port %d, data dir suffix %q)",
		params.Name, params.RPCPort, params.DataDirSuffix)
}

// Current returns the active parameters, or ErrUnconfigured if Select was
// never called.
func (s *Selector) Current() (*Params, error) {
	params, ok := s.active.Load().(*Params)
	if !ok {
		return nil, ErrUnconfigured
	}
	return params, nil
}

// IsConfigured returns whether Select was called.
func (s *Selector) IsConfigured() bool {
	_, ok := s.active.Load().(*Params)
	return ok
}

// activeSelector is the process-wide selector used by the package level
// functions below.
var activeSelector = NewSelector()

// SelectNetwork selects net on the process-wide selector.
func SelectNetwork(net Network) {
	activeSelector.Select(net)
}

// ActiveParams returns the parameters selected on the process-wide selector.
func ActiveParams() (*Params, error) {
	return activeSelector.Current()
}

// AreParamsConfigured returns whether a network was selected on the
// process-wide selector.
func AreParamsConfigured() bool {
	return activeSelector.IsConfigured()
}

// DefaultSelector returns the process-wide selector.
func DefaultSelector() *Selector {
	return activeSelector
}
