package batch

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for circuit files and processing.
var (
	// ErrInvalidChunkSize indicates a chunk size outside [MinChunkSize, MaxChunkSize].
	ErrInvalidChunkSize = constError("chunk size must be between 1 and 1000")

	// ErrNilCallback indicates a missing chunk callback.
	ErrNilCallback = constError("chunk callback cannot be nil")

	// ErrEmptyItems indicates there is nothing to process.
	ErrEmptyItems = constError("items slice cannot be empty")

	// ErrNoCircuits indicates a circuits file without circuits.
	ErrNoCircuits = constError("circuits file lists no circuits")

	// ErrInvalidCircuit indicates a circuit entry that cannot be built.
	ErrInvalidCircuit = constError("invalid circuit")

	// ErrUnsupportedVersion indicates a circuits file written for another schema.
	ErrUnsupportedVersion = constError("unsupported circuits file version")
)
