package state

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zplugin/zplugin/pkg/param"
)

func testRuntime() *param.Runtime {
	decls := []param.Declaration{
		param.Float("gain", "Gain").Range(-60, 24).Default(0).Build(),
		param.Bool("bypass", "Bypass").Build(),
		param.ChoiceOf("mode", "Mode", "A", "B", "C").Build(),
	}
	return param.NewRuntime(decls)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	rt := testRuntime()
	rt.SetNormalized(0, 0.75)
	rt.SetNormalized(1, 1.0)
	rt.SetNormalized(2, rt.Declaration(2).Normalize(1))

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, rt, Version, nil))

	rt2 := testRuntime()
	version, err := Load(&buf, rt2, Version, nil)
	require.NoError(t, err)
	assert.Equal(t, Version, version)

	assert.InDelta(t, rt.Normalized(0), rt2.Normalized(0), 1e-6)
	assert.Equal(t, rt.Normalized(1), rt2.Normalized(1))
	assert.InDelta(t, rt.Normalized(2), rt2.Normalized(2), 1e-6)
}

func TestLoadRejectsWrongMagic(t *testing.T) {
	buf := bytes.NewBufferString("XXXX")
	_, err := Load(buf, testRuntime(), Version, nil)
	assert.ErrorIs(t, err, ErrInvalidMagic)
}

func TestLoadRejectsTruncatedMagicOnly(t *testing.T) {
	buf := bytes.NewBuffer(magic[:])
	_, err := Load(buf, testRuntime(), Version, nil)
	assert.ErrorIs(t, err, ErrTruncatedStream)
}

func TestLoadRejectsVersionNewerThanKnown(t *testing.T) {
	rt := testRuntime()
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, rt, 2, nil))

	_, err := Load(&buf, testRuntime(), 1, nil)
	assert.ErrorIs(t, err, ErrVersionTooNew)
}

func TestLoadIgnoresExtraSavedParameters(t *testing.T) {
	rt := testRuntime()
	rt.SetNormalized(0, 0.3)
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, rt, Version, nil))

	smaller := param.NewRuntime([]param.Declaration{
		param.Float("gain", "Gain").Range(-60, 24).Build(),
	})
	_, err := Load(&buf, smaller, Version, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, smaller.Normalized(0), 1e-6)
}

type extFixture struct {
	written string
	read    string
	version uint32
}

func (e *extFixture) WriteExtension(w Writer) error {
	_, err := w.Write([]byte(e.written))
	return err
}

func (e *extFixture) ReadExtension(r Reader, version uint32) error {
	e.version = version
	b := make([]byte, len(e.written))
	n, _ := r.Read(b)
	e.read = string(b[:n])
	return nil
}

func TestExtensionBytesRoundTrip(t *testing.T) {
	rt := testRuntime()
	var buf bytes.Buffer
	src := &extFixture{written: "author-data"}
	require.NoError(t, Save(&buf, rt, Version, src))

	dst := &extFixture{written: "author-data"}
	_, err := Load(&buf, testRuntime(), Version, dst)
	require.NoError(t, err)
	assert.Equal(t, "author-data", dst.read)
	assert.Equal(t, Version, dst.version)
}
