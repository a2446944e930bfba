package typed_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensor-types/tensortypes/param"
	"github.com/tensor-types/tensortypes/tensor"
	"github.com/tensor-types/tensortypes/typed"
)

// Branded dimension types for the declarations below.
type (
	batchSize      param.Dim
	sequenceLength param.Dim
	modelDimension param.Dim
)

// encoderInput is a 3-dimensional float32 wrapper type bound to
// (batch, sequence, model) dimensions.
type encoderInput struct{}

func (encoderInput) TypeName() string      { return "EncoderInput" }
func (encoderInput) Rank() int             { return 3 }
func (encoderInput) Kind() tensor.DataType { return tensor.Float32 }

// decoderInput is shape-identical to encoderInput but a distinct wrapper
// type; the registry must keep their slots apart.
type decoderInput struct{}

func (decoderInput) TypeName() string      { return "DecoderInput" }
func (decoderInput) Rank() int             { return 3 }
func (decoderInput) Kind() tensor.DataType { return tensor.Float32 }

// labelBatch is a 1-dimensional int64 wrapper type.
type labelBatch struct{}

func (labelBatch) TypeName() string      { return "LabelBatch" }
func (labelBatch) Rank() int             { return 1 }
func (labelBatch) Kind() tensor.DataType { return tensor.Int64 }

func TestSetThenGetDims(t *testing.T) {
	reg := typed.NewRegistry()

	assert.False(t, typed.IsInitialized[encoderInput](reg))
	dims, ok := typed.GetDims[encoderInput](reg)
	assert.False(t, ok)
	assert.Nil(t, dims)

	b, s, m := batchSize(20), sequenceLength(20), modelDimension(40)
	require.NoError(t, typed.Set[encoderInput](reg, param.Int64(b), param.Int64(s), param.Int64(m)))

	assert.True(t, typed.IsInitialized[encoderInput](reg))
	dims, ok = typed.GetDims[encoderInput](reg)
	require.True(t, ok)
	assert.Equal(t, typed.Dims{20, 20, 40}, dims)
}

func TestSetTwiceFails(t *testing.T) {
	reg := typed.NewRegistry()

	require.NoError(t, typed.Set[encoderInput](reg, 20, 20, 40))

	err := typed.Set[encoderInput](reg, 1, 2, 3)
	var already *typed.AlreadyInitializedError
	require.ErrorAs(t, err, &already)
	assert.Equal(t, "EncoderInput", already.TypeName)

	// The stored dimensions keep the first writer's value.
	dims, ok := typed.GetDims[encoderInput](reg)
	require.True(t, ok)
	assert.Equal(t, typed.Dims{20, 20, 40}, dims)
}

func TestSetWrongArity(t *testing.T) {
	reg := typed.NewRegistry()

	err := typed.Set[encoderInput](reg, 20, 20)
	var arity *typed.ArityError
	require.ErrorAs(t, err, &arity)
	assert.Equal(t, "EncoderInput", arity.TypeName)
	assert.Equal(t, 3, arity.Declared)
	assert.Equal(t, 2, arity.Given)

	// A failed arity check must not claim the slot.
	assert.False(t, typed.IsInitialized[encoderInput](reg))
	require.NoError(t, typed.Set[encoderInput](reg, 20, 20, 40))
}

func TestRegistryKeepsTypesApart(t *testing.T) {
	reg := typed.NewRegistry()

	require.NoError(t, typed.Set[encoderInput](reg, 20, 20, 40))

	// DecoderInput has its own slot, still unset.
	assert.False(t, typed.IsInitialized[decoderInput](reg))
	require.NoError(t, typed.Set[decoderInput](reg, 10, 10, 40))

	enc, _ := typed.GetDims[encoderInput](reg)
	dec, _ := typed.GetDims[decoderInput](reg)
	assert.Equal(t, typed.Dims{20, 20, 40}, enc)
	assert.Equal(t, typed.Dims{10, 10, 40}, dec)
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := typed.NewRegistry()
	b := typed.NewRegistry()

	require.NoError(t, typed.Set[labelBatch](a, 64))
	assert.False(t, typed.IsInitialized[labelBatch](b))
	require.NoError(t, typed.Set[labelBatch](b, 128))

	dimsA, _ := typed.GetDims[labelBatch](a)
	dimsB, _ := typed.GetDims[labelBatch](b)
	assert.Equal(t, typed.Dims{64}, dimsA)
	assert.Equal(t, typed.Dims{128}, dimsB)
}

func TestGetDimsReturnsCopy(t *testing.T) {
	reg := typed.NewRegistry()
	require.NoError(t, typed.Set[labelBatch](reg, 64))

	dims, _ := typed.GetDims[labelBatch](reg)
	dims[0] = 999

	fresh, _ := typed.GetDims[labelBatch](reg)
	assert.Equal(t, typed.Dims{64}, fresh)
}

// TestSetSingleWinner races many goroutines on one slot: exactly one Set
// succeeds, all others observe AlreadyInitializedError, and the stored
// dimensions belong to the winner.
func TestSetSingleWinner(t *testing.T) {
	reg := typed.NewRegistry()

	const goroutines = 32
	results := make([]error, goroutines)

	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer done.Done()
			start.Wait()
			results[i] = typed.Set[labelBatch](reg, int64(i+1))
		}(i)
	}
	start.Done()
	done.Wait()

	winners := 0
	var winner int
	for i, err := range results {
		if err == nil {
			winners++
			winner = i
			continue
		}
		var already *typed.AlreadyInitializedError
		assert.True(t, errors.As(err, &already), "loser %d got %v, want AlreadyInitializedError", i, err)
	}
	require.Equal(t, 1, winners, "exactly one Set call must win")

	dims, ok := typed.GetDims[labelBatch](reg)
	require.True(t, ok)
	assert.Equal(t, typed.Dims{int64(winner + 1)}, dims)
}

// defaultOnly exists solely for the Default() test so no other test touches
// its slot in the process-wide registry.
type defaultOnly struct{}

func (defaultOnly) TypeName() string      { return "DefaultOnly" }
func (defaultOnly) Rank() int             { return 2 }
func (defaultOnly) Kind() tensor.DataType { return tensor.Float32 }

func TestNilRegistryMeansDefault(t *testing.T) {
	require.NoError(t, typed.Set[defaultOnly](nil, 2, 3))
	assert.True(t, typed.IsInitialized[defaultOnly](typed.Default()))

	dims, ok := typed.GetDims[defaultOnly](nil)
	require.True(t, ok)
	assert.Equal(t, typed.Dims{2, 3}, dims)
}
