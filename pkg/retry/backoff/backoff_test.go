package backoff

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBinaryExponential(t *testing.T) {
	s := BinaryExponential(250 * time.Millisecond)

	assert.Equal(t, 250*time.Millisecond, s(1))
	assert.Equal(t, 500*time.Millisecond, s(2))
	assert.Equal(t, time.Second, s(3))
	assert.Equal(t, 2*time.Second, s(4))

	assert.Equal(t, time.Duration(math.MaxInt64), s(200))
}
