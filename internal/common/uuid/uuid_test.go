package uuid

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUUID(t *testing.T) {
	gen := New()

	first := gen.NewUUID()
	second := gen.NewUUID()

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), first)
	assert.NotEqual(t, first, second)
}
