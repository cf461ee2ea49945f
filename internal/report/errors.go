package report

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownFormat indicates an output format other than table or json.
const ErrUnknownFormat = constError("unknown output format")
