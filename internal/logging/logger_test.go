package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	assert.NotPanics(t, func() {
		l.Debugf("a %d", 1)
		l.Infof("b")
		l.Warnf("c %s", "x")
		l.Errorf("d")
	})
}

func TestNewSatisfiesLogger(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		l, err := New(verbose)
		require.NoError(t, err)
		var _ Logger = l
		_ = l.Sync()
	}
}
