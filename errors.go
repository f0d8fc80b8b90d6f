package rips

import (
	"fmt"

	"github.com/juju/errors"

	interrors "github.com/faern/rips/internal/errors"
)

// IsMTU returns true if err is an MTU-related error created by this
// package, i.e. a frame too large for the device it was written to.
func IsMTU(err error) bool {
	return interrors.IsMTU(err)
}

// IsTimeout returns true if err is a timeout-related error, as defined
// by having a Timeout() bool method which returns true.
func IsTimeout(err error) bool {
	return interrors.IsTimeout(err)
}

type tooShort struct {
	errors.Err
}

func tooShortf(format string, args ...interface{}) error {
	err := errors.NewErr(format, args...)
	err.SetLocation(2)
	return &tooShort{err}
}

// IsTooShort returns true if err was caused by a buffer shorter than the
// minimum header length of the packet type being constructed. On a receive
// path this indicates a transport bug or a corrupted capture, so callers
// may want to count it separately from ordinary routing misses.
func IsTooShort(err error) bool {
	_, ok := errors.Cause(err).(*tooShort)
	return ok
}

type invalidDestination struct {
	errors.Err
	destination MAC
}

func invalidDestinationf(destination MAC) error {
	err := errors.NewErr("frame for %s received", destination)
	err.SetLocation(2)
	return &invalidDestination{Err: err, destination: destination}
}

// IsInvalidDestination returns true if err reports a frame whose
// destination address matched neither the receiver nor the broadcast
// address. Such frames are expected on shared media and should be treated
// as filtered out, not as failures.
func IsInvalidDestination(err error) bool {
	_, ok := errors.Cause(err).(*invalidDestination)
	return ok
}

// InvalidDestinationMAC returns the destination address carried by an
// invalid-destination error, and whether err is one.
func InvalidDestinationMAC(err error) (MAC, bool) {
	cause, ok := errors.Cause(err).(*invalidDestination)
	if !ok {
		return MAC{}, false
	}
	return cause.destination, true
}

type unmatchedEtherType struct {
	errors.Err
	etherType EtherType
}

func unmatchedEtherTypef(etherType EtherType) error {
	err := errors.NewErr("no route for %s", etherType)
	err.SetLocation(2)
	return &unmatchedEtherType{Err: err, etherType: etherType}
}

// IsUnmatchedEtherType returns true if err reports an admitted frame
// whose EtherType has no configured route. Like invalid destinations,
// these are expected and non-fatal.
func IsUnmatchedEtherType(err error) bool {
	_, ok := errors.Cause(err).(*unmatchedEtherType)
	return ok
}

// UnmatchedEtherTypeValue returns the EtherType carried by an
// unmatched-EtherType error, and whether err is one.
func UnmatchedEtherTypeValue(err error) (EtherType, bool) {
	cause, ok := errors.Cause(err).(*unmatchedEtherType)
	if !ok {
		return 0, false
	}
	return cause.etherType, true
}

// A RouteError wraps the error returned by the payload listener of a
// configured route. The listener's own error is left untouched and can
// be recovered with Unwrap or the Err field.
type RouteError struct {
	EtherType EtherType
	Err       error
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("listener for %s: %s", e.EtherType, e.Err)
}

func (e *RouteError) Unwrap() error {
	return e.Err
}

// IsRouteError returns true if err is a RouteError, i.e. an admitted and
// routed frame whose listener failed.
func IsRouteError(err error) bool {
	_, ok := errors.Cause(err).(*RouteError)
	return ok
}
