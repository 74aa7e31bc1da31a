package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/gonaz/internal/fault"
)

func TestError(t *testing.T) {
	err := fault.Errorf(fault.Range, "%v out of range", 135)
	assert.EqualError(t, err, "range error: 135 out of range")
	assert.True(t, errors.Is(err, fault.Range), "expected to match its kind")
	assert.False(t, errors.Is(err, fault.Domain), "expected not to match another kind")

	wrapped := fmt.Errorf("at Toplevel:28: %w", err)
	assert.True(t, errors.Is(wrapped, fault.Range), "expected kind to survive wrapping")
	assert.Equal(t, fault.Range, fault.KindOf(wrapped))
	assert.Equal(t, fault.Kind(0), fault.KindOf(errors.New("nope")))

	assert.EqualError(t, fault.Errorf(fault.Protocol, ""), "protocol error")
	assert.EqualError(t, fault.Kind(99), "fault kind 99")
}
