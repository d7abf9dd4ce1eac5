package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	l := WithComponent(NewWriter(&buf), "bus")
	l.Debugf("read from unusable area: 0x%04X", 0xFEA0)

	out := buf.String()
	assert.Contains(t, out, "level=debug")
	assert.Contains(t, out, "read from unusable area: 0xFEA0")
	assert.Contains(t, out, "component=bus")
}

func TestNewWithLevel(t *testing.T) {
	l, err := NewWithLevel("debug")
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = NewWithLevel("loud")
	assert.Error(t, err)
}

func TestNullLogger(t *testing.T) {
	l := WithComponent(NewNullLogger(), "cpu")
	assert.NotPanics(t, func() {
		l.Infof("%d", 1)
		l.Errorf("%d", 2)
		l.Debugf("%d", 3)
	})
}
