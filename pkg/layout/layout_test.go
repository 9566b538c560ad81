package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStereoDeclaresSymmetricMainBuses(t *testing.T) {
	io := Stereo()
	assert.Equal(t, 2, *io.MainIn)
	assert.Equal(t, 2, *io.MainOut)
}

func TestGeneratorHasNoMainInput(t *testing.T) {
	io := Generator(2)
	assert.Nil(t, io.MainIn)
	assert.Equal(t, 2, *io.MainOut)
}

func TestAnalyzerHasNoMainOutput(t *testing.T) {
	io := Analyzer(2)
	assert.Nil(t, io.MainOut)
	assert.Equal(t, 2, *io.MainIn)
}

func TestWithAuxAttachesBusCounts(t *testing.T) {
	io := Stereo().WithAux([]int{2}, []int{2})
	assert.Equal(t, 1, io.NumAuxIn())
	assert.Equal(t, 1, io.NumAuxOut())
}

func TestEmptyTransportIsLegalDefault(t *testing.T) {
	var tr Transport
	assert.False(t, tr.Playing)
	assert.Equal(t, 0.0, tr.TempoBPM)
}
