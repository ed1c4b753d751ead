package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// numericSlope approximates d/dx f(x) by central differences.
func numericSlope(f Activation, x float32) float32 {
	const h = 1e-3
	hi := f.Activate(x + h)
	lo := f.Activate(x - h)
	return (hi - lo) / (2 * h)
}

func TestActivation_DerivativeMatchesSlope(t *testing.T) {
	activations := map[string]Activation{
		"linear":     NewLinear(),
		"relu":       NewReLU(),
		"leaky_relu": NewLeakyReLU(0.1),
		"sigmoid":    NewSigmoid(),
		"tanh":       NewTanh(),
	}
	// Avoid 0, where the rectifiers have a kink.
	points := []float32{-2.5, -0.7, -0.1, 0.2, 0.9, 3}

	for name, act := range activations {
		t.Run(name, func(t *testing.T) {
			for _, x := range points {
				got := act.Derivative(act.Activate(x))
				want := numericSlope(act, x)
				assert.InDelta(t, want, got, 1e-2, "x=%v", x)
			}
		})
	}
}

func TestLinear_Identity(t *testing.T) {
	lin := NewLinear()
	for _, x := range []float32{-1e6, -3.5, 0, 1e-7, 42} {
		assert.Equal(t, x, lin.Activate(x))
		assert.Equal(t, float32(1), lin.Derivative(x))
	}
}

func TestSigmoid_KnownValues(t *testing.T) {
	s := NewSigmoid()
	assert.Equal(t, float32(0.5), s.Activate(0))
	assert.Equal(t, float32(0.25), s.Derivative(0.5))

	sigmoid := func(x float32) float32 {
		return 1.0 / (1.0 + float32(math.Exp(float64(-x))))
	}
	assert.InDelta(t, sigmoid(2), s.Activate(2), 1e-6)
}

func TestTanh_KnownValues(t *testing.T) {
	th := NewTanh()
	assert.Equal(t, float32(0), th.Activate(0))
	assert.Equal(t, float32(1), th.Derivative(0))
	assert.InDelta(t, 0.75, th.Derivative(0.5), 1e-7)
}

func TestReLU(t *testing.T) {
	r := NewReLU()
	assert.Equal(t, float32(0), r.Activate(-3))
	assert.Equal(t, float32(3), r.Activate(3))
	assert.Equal(t, float32(0), r.Derivative(0))
	assert.Equal(t, float32(1), r.Derivative(2))
}

func TestLeakyReLU(t *testing.T) {
	l := NewLeakyReLU(0.2)
	assert.InDelta(t, -0.6, l.Activate(-3), 1e-6)
	assert.Equal(t, float32(3), l.Activate(3))
	assert.Equal(t, float32(0.2), l.Derivative(-0.6))
	assert.Equal(t, float32(1), l.Derivative(3))

	assert.Equal(t, float32(DefaultLeakyReLUAlpha), NewLeakyReLU(0).Alpha())
}

func TestActivationByName(t *testing.T) {
	for name, want := range map[string]Activation{
		"linear":     Linear{},
		"ReLU":       ReLU{},
		"leaky_relu": NewLeakyReLU(DefaultLeakyReLUAlpha),
		"sigmoid":    Sigmoid{},
		" tanh ":     Tanh{},
	} {
		got, err := ActivationByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ActivationByName("softmax")
	require.ErrorIs(t, err, ErrUnknownActivation)
}
