package config

type constError string

func (e constError) Error() string { return string(e) }

// Configuration errors.
const (
	ErrNoConfigPath       = constError("config: no config path set")
	ErrInvalidValue       = constError("config: invalid value")
	ErrUnsupportedVersion = constError("config: unsupported schema version")
	ErrNilTarget          = constError("config: nil target")
)
