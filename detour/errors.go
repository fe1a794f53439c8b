package detour

import (
	"errors"
	"fmt"
)

var ErrFailure = errors.New("operation failed")

var ErrInvalidParam = fmt.Errorf("%w: an input parameter was invalid", ErrFailure)
var ErrBadFormat = fmt.Errorf("%w: tile data is not recognized", ErrFailure)
var ErrVersionMismatch = fmt.Errorf("%w: tile data is in wrong version", ErrFailure)
var ErrSlotOccupied = fmt.Errorf("%w: tile x/y/layer already has a tile assigned", ErrFailure)
var ErrNoFreeSlot = fmt.Errorf("%w: navmesh has no free tile slot", ErrFailure)
var ErrUnreachable = fmt.Errorf("%w: no polygon found in the search box", ErrFailure)

var ErrBufferTooSmall = errors.New("result buffer for the query was too small to store all results")
var ErrOutOfNodes = errors.New("query ran out of nodes during search")
var ErrPartialResult = errors.New("query did not reach the end location, returning best guess")

// StatusToError converts a DtStatus returned by a query entry point into the
// matching sentinel error. Detail bits are checked in the order below and the
// first one set decides the error, whether the status is SUCCESS or FAILURE:
// a successful status carrying PARTIAL_RESULT, OUT_OF_NODES or
// BUFFER_TOO_SMALL yields ErrPartialResult, ErrOutOfNodes or ErrBufferTooSmall,
// none of which wraps ErrFailure. A FAILURE with no detail bit yields
// ErrFailure, and a bare SUCCESS (no detail bits set) yields nil.
func StatusToError(status DtStatus) error {
	switch {
	case status.DtStatusDetail(DT_WRONG_MAGIC):
		return ErrBadFormat
	case status.DtStatusDetail(DT_WRONG_VERSION):
		return ErrVersionMismatch
	case status.DtStatusDetail(DT_ALREADY_OCCUPIED):
		return ErrSlotOccupied
	case status.DtStatusDetail(DT_NO_FREE_SLOT):
		return ErrNoFreeSlot
	case status.DtStatusDetail(DT_UNREACHABLE):
		return ErrUnreachable
	case status.DtStatusDetail(DT_INVALID_PARAM):
		return ErrInvalidParam
	case status.DtStatusDetail(DT_BUFFER_TOO_SMALL):
		return ErrBufferTooSmall
	case status.DtStatusDetail(DT_OUT_OF_NODES):
		return ErrOutOfNodes
	case status.DtStatusDetail(DT_PARTIAL_RESULT):
		return ErrPartialResult
	case status.DtStatusFailed():
		return ErrFailure
	default:
		return nil
	}
}
