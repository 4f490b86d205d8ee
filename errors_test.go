package pixelkernel

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", invalidArg("Op", "bad value %d", 3))

	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.False(t, errors.Is(err, ErrOutOfBounds))
	assert.False(t, errors.Is(err, ErrPrecondition))
	assert.Equal(t, InvalidArgument, KindOf(err))
	assert.Equal(t, "Op: invalid argument: bad value 3", errors.Unwrap(err).Error())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, OutOfBounds, KindOf(outOfBounds("At", 5, 1, 4, 4)))
	assert.Equal(t, PreconditionViolation, KindOf(precondition("X", "nope")))
	assert.Equal(t, ErrorKind(0), KindOf(errors.New("plain")))
	assert.Equal(t, ErrorKind(0), KindOf(nil))
	assert.Equal(t, "unknown", ErrorKind(0).String())
}
