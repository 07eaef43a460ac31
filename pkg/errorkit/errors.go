package errorkit

// The error taxonomy shared by the collections and the query pipeline.
//
// Pipeline operators panic with these values when they receive an argument they cannot work with,
// while collections return them when their current state does not allow an operation.
// In both cases errors.Is can be used to tell them apart.
const (
	// ErrInvalidArgument is raised when an argument has the wrong shape,
	// like a nil predicate, a nil node or a copy target which is too small.
	ErrInvalidArgument Error = "invalid argument"
	// ErrNullSource is raised when a required source sequence is absent.
	ErrNullSource Error = "source sequence is nil"
	// ErrInvalidNodeOwnership is raised when a linked list receives a node that belongs to another list,
	// or an anchor node that does not belong to the list.
	ErrInvalidNodeOwnership Error = "invalid node list"
	// ErrEmptyCollection is raised when an operation needs at least one element.
	ErrEmptyCollection Error = "collection is empty"
)
