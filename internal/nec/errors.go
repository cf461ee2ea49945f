package nec

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by the text decoders. Table lookups never return errors.
var (
	// ErrUnknownSize indicates a size designation outside the size table.
	ErrUnknownSize = constError("unknown conductor size")

	// ErrUnknownMetal indicates a conductor metal other than copper or aluminum.
	ErrUnknownMetal = constError("unknown conductor metal")

	// ErrUnknownInsulation indicates an insulation code outside the catalog.
	ErrUnknownInsulation = constError("unknown insulation")

	// ErrUnknownMaterial indicates an unrecognized conduit material.
	ErrUnknownMaterial = constError("unknown conduit material")

	// ErrUnknownTradeSize indicates an unrecognized conduit trade size.
	ErrUnknownTradeSize = constError("unknown trade size")
)
