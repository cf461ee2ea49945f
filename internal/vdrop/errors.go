package vdrop

type constError string

func (e constError) Error() string { return string(e) }

// ErrNilProperties is returned by New when no property table is supplied.
const ErrNilProperties = constError("vdrop: nil property table")
