package train

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveHyperParams(t *testing.T) {
	hp, err := SaveHyperParams(struct {
		LR        float64
		MaxEpochs int
		Shuffle   bool
		Name      string
		Weights   []float32 // non-scalar, skipped
		hidden    int       // unexported, skipped
	}{LR: 0.01, MaxEpochs: 5, Shuffle: true, Name: "linreg", hidden: 7})
	require.NoError(t, err)

	assert.Equal(t, 4, hp.Len())

	lr, ok := hp.Float("LR")
	require.True(t, ok)
	assert.Equal(t, 0.01, lr)

	epochs, ok := hp.Int("MaxEpochs")
	require.True(t, ok)
	assert.Equal(t, int64(5), epochs)

	shuffle, ok := hp.Bool("Shuffle")
	require.True(t, ok)
	assert.True(t, shuffle)

	name, ok := hp.String("Name")
	require.True(t, ok)
	assert.Equal(t, "linreg", name)

	assert.False(t, hp.Has("Weights"))
	assert.False(t, hp.Has("hidden"))
}

func TestSaveHyperParams_Ignore(t *testing.T) {
	hp, err := SaveHyperParams(&struct {
		LR   float64
		Seed int64
	}{0.1, 42}, "Seed")
	require.NoError(t, err)

	assert.True(t, hp.Has("LR"))
	assert.False(t, hp.Has("Seed"))
}

func TestSaveHyperParams_NotAStruct(t *testing.T) {
	_, err := SaveHyperParams(42)
	assert.Error(t, err)
}

func TestSaveHyperParams_Float32Widened(t *testing.T) {
	hp, err := SaveHyperParams(struct{ LR float32 }{0.5})
	require.NoError(t, err)

	lr, ok := hp.Float("LR")
	require.True(t, ok)
	assert.Equal(t, 0.5, lr)
}

func TestHyperParams_GobRoundTrip(t *testing.T) {
	hp, err := SaveHyperParams(struct {
		LR        float64
		MaxEpochs int
		Name      string
	}{0.3, 10, "example"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(hp))

	var decoded HyperParams
	require.NoError(t, gob.NewDecoder(&buf).Decode(&decoded))

	assert.Equal(t, hp.Len(), decoded.Len())
	lr, ok := decoded.Float("LR")
	require.True(t, ok)
	assert.Equal(t, 0.3, lr)
}
