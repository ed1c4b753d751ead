package nn

import (
	"testing"

	"github.com/born-ml/feedforward/internal/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(seed int64) LayerConfig {
	return LayerConfig{Rand: NewRand(seed)}
}

func newTestLayer(t *testing.T, neurons, inputs int, act Activation) *Layer {
	t.Helper()
	l, err := NewLayer(neurons, inputs, act, testConfig(1))
	require.NoError(t, err)
	return l
}

func TestNewLayer_Shapes(t *testing.T) {
	l := newTestLayer(t, 3, 4, NewReLU())

	assert.Equal(t, 3, l.PerceptronSize())
	assert.Equal(t, 4, l.InputSize())
	assert.Len(t, l.Weights(), 12)
	assert.Len(t, l.WeightGradient(), 12)
	assert.Len(t, l.Biases(), 3)
	assert.Len(t, l.Activations(), 3)
	assert.Len(t, l.ErrorGradient(), 3)
	assert.Len(t, l.BiasGradient(), 3)

	for _, w := range l.Weights() {
		assert.GreaterOrEqual(t, w, float32(-1))
		assert.Less(t, w, float32(1))
	}
	assert.Equal(t, []float32{0, 0, 0}, l.Biases())
}

func TestNewLayer_InvalidSize(t *testing.T) {
	_, err := NewLayer(0, 3, NewLinear(), testConfig(1))
	require.ErrorIs(t, err, ErrInvalidSize)

	_, err = NewLayer(3, -1, NewLinear(), testConfig(1))
	require.ErrorIs(t, err, ErrInvalidSize)

	_, err = NewLayer(3, 3, nil, testConfig(1))
	require.ErrorIs(t, err, ErrUnknownActivation)
}

func TestNewLayer_SeededInitIsReproducible(t *testing.T) {
	a, err := NewLayer(5, 7, NewTanh(), testConfig(42))
	require.NoError(t, err)
	b, err := NewLayer(5, 7, NewTanh(), testConfig(42))
	require.NoError(t, err)

	assert.Equal(t, a.Weights(), b.Weights())
}

func TestLayer_Forward(t *testing.T) {
	l := newTestLayer(t, 2, 3, NewReLU())
	copy(l.Weights(), []float32{
		1, 2, 3,
		-1, -1, -1,
	})
	copy(l.Biases(), []float32{0.5, 1})

	out := l.Forward([]float32{1, 1, 1})

	// [6.5, max(0, -2)]
	assert.Equal(t, []float32{6.5, 0}, out)
	assert.Equal(t, out, l.Activations())
}

func TestLayer_ForwardWrongWidthPanics(t *testing.T) {
	l := newTestLayer(t, 2, 3, NewLinear())
	assert.Panics(t, func() {
		l.Forward([]float32{1, 2})
	})
}

func TestLayer_ForwardParallelMatchesSequential(t *testing.T) {
	const neurons, inputs = 1024, 16

	par, err := NewLayer(neurons, inputs, NewSigmoid(), LayerConfig{
		Rand:     NewRand(7),
		Parallel: parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 64},
	})
	require.NoError(t, err)
	seq, err := NewLayer(neurons, inputs, NewSigmoid(), LayerConfig{
		Rand:     NewRand(7),
		Parallel: parallel.Sequential(),
	})
	require.NoError(t, err)

	x := make([]float32, inputs)
	for i := range x {
		x[i] = float32(i)/inputs - 0.5
	}

	assert.Equal(t, seq.Forward(x), par.Forward(x))
}

// Two chained layers, Linear hidden into Linear output, with hand-picked
// weights so the gradients can be checked by hand.
func TestLayer_Backward(t *testing.T) {
	hidden := newTestLayer(t, 2, 1, NewLinear())
	copy(hidden.Weights(), []float32{1, 2})

	next := newTestLayer(t, 1, 2, NewLinear())
	copy(next.Weights(), []float32{3, 4})

	x := []float32{0.5}
	h := hidden.Forward(x) // [0.5, 1]
	next.Forward(h)
	next.ErrorGradient()[0] = 2

	got := hidden.Backward(next, x)
	assert.Same(t, hidden, got)

	// dE = W_next^T · dE_next * f'(a) = [6, 8]
	assert.Equal(t, []float32{6, 8}, hidden.ErrorGradient())
	// dW = dE ⊗ x
	assert.Equal(t, []float32{3, 4}, hidden.WeightGradient())
	assert.Equal(t, []float32{6, 8}, hidden.BiasGradient())
}

func TestLayer_BackwardAppliesActivationSlope(t *testing.T) {
	hidden := newTestLayer(t, 2, 1, NewReLU())
	copy(hidden.Weights(), []float32{1, -1})

	next := newTestLayer(t, 1, 2, NewLinear())
	copy(next.Weights(), []float32{3, 4})

	x := []float32{2}
	hidden.Forward(x) // [2, 0]
	next.ErrorGradient()[0] = 1

	hidden.Backward(next, x)

	// Second neuron is off, so nothing flows through it.
	assert.Equal(t, []float32{3, 0}, hidden.ErrorGradient())
	assert.Equal(t, []float32{6, 0}, hidden.WeightGradient())
}

func TestLayer_BiasGradientAccumulates(t *testing.T) {
	hidden := newTestLayer(t, 1, 1, NewLinear())
	next := newTestLayer(t, 1, 1, NewLinear())
	copy(next.Weights(), []float32{1})
	next.ErrorGradient()[0] = 1.5

	x := []float32{1}
	hidden.Forward(x)
	hidden.Backward(next, x)
	hidden.Backward(next, x)

	assert.Equal(t, []float32{3}, hidden.BiasGradient())
	// Weight gradient is overwritten, not summed.
	assert.Equal(t, []float32{1.5}, hidden.WeightGradient())
}

func TestLayer_BackwardMismatchedNextPanics(t *testing.T) {
	hidden := newTestLayer(t, 2, 1, NewLinear())
	next := newTestLayer(t, 1, 3, NewLinear())

	assert.Panics(t, func() {
		hidden.Backward(next, []float32{1})
	})
}

func TestLayer_Update(t *testing.T) {
	l := newTestLayer(t, 1, 2, NewLinear())
	copy(l.Weights(), []float32{1, 1})
	copy(l.WeightGradient(), []float32{2, -4})
	copy(l.BiasGradient(), []float32{10})
	copy(l.ErrorGradient(), []float32{10})

	l.Update(0.5)

	assert.Equal(t, []float32{0, 3}, l.Weights())
	assert.Equal(t, []float32{-5}, l.Biases())
	assert.Equal(t, []float32{0, 0}, l.WeightGradient())
	assert.Equal(t, []float32{0}, l.BiasGradient())
	assert.Equal(t, []float32{0}, l.ErrorGradient())
}
