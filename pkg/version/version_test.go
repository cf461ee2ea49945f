package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	t.Run("linker value wins", func(t *testing.T) {
		saved := version
		t.Cleanup(func() { version = saved })

		version = "v1.2.3"
		assert.Equal(t, "v1.2.3", GetVersion())
	})

	t.Run("never empty", func(t *testing.T) {
		saved := version
		t.Cleanup(func() { version = saved })

		version = ""
		assert.NotEmpty(t, GetVersion())
	})
}
