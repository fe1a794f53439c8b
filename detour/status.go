package detour

// DtStatus is a bitset result code. The high bits carry the coarse outcome
// (failure/success/in-progress, mutually exclusive); the low bits carry
// detail flags that may accompany SUCCESS (PARTIAL_RESULT, OUT_OF_NODES, ...).
type DtStatus int

const (
	// High level status.
	DT_FAILURE     = 1 << 31 // Operation failed.
	DT_SUCCESS     = 1 << 30 // Operation succeed.
	DT_IN_PROGRESS = 1 << 29 // Operation still in progress.

	// Detail information for status.
	DT_STATUS_DETAIL_MASK = 0x0ffffff
	DT_WRONG_MAGIC        = 1 << 0  // Input data is not recognized.
	DT_WRONG_VERSION      = 1 << 1  // Input data is in wrong version.
	DT_OUT_OF_MEMORY      = 1 << 2  // Operation ran out of memory.
	DT_INVALID_PARAM      = 1 << 3  // An input parameter was invalid.
	DT_BUFFER_TOO_SMALL   = 1 << 4  // Result buffer for the query was too small to store all results.
	DT_OUT_OF_NODES       = 1 << 5  // Query ran out of nodes during search.
	DT_PARTIAL_RESULT     = 1 << 6  // Query did not reach the end location, returning best guess.
	DT_ALREADY_OCCUPIED   = 1 << 7  // A tile has already been assigned to the given x,y coordinate.
	DT_NO_FREE_SLOT       = 1 << 8  // NavMesh has no free tile slot and cannot grow.
	DT_UNREACHABLE        = 1 << 9  // No polygon was found in the search box.
)

// DtStatusSucceed returns true if status is success (with or without detail bits).
func (status DtStatus) DtStatusSucceed() bool {
	return (status & DT_SUCCESS) != 0
}

// DtStatusFailed returns true if status is failure.
func (status DtStatus) DtStatusFailed() bool {
	return (status & DT_FAILURE) != 0
}

// DtStatusInProgress returns true if status is in progress.
func (status DtStatus) DtStatusInProgress() bool {
	return (status & DT_IN_PROGRESS) != 0
}

// DtStatusDetail returns true if the given detail bit is set.
func (status DtStatus) DtStatusDetail(detail int) bool {
	return (int(status) & detail) != 0
}
