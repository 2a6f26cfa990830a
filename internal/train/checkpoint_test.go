package train_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mybuilderpal/DeepLearning.Two/internal/tensor"
	"github.com/mybuilderpal/DeepLearning.Two/internal/train"
)

func checkpointFixture(t *testing.T) map[string]*tensor.Tensor[float64] {
	t.Helper()
	w1, err := tensor.FromSlice([]float64{0.5, -1.25, 3}, tensor.Shape{3})
	require.NoError(t, err)
	w2, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)
	return map[string]*tensor.Tensor[float64]{
		"layer1.weight": w1,
		"layer2.weight": w2,
		"bias":          tensor.Scalar(0.75),
	}
}

// TestCheckpoint_RoundTrip tests Save followed by Load.
func TestCheckpoint_RoundTrip(t *testing.T) {
	entries := checkpointFixture(t)

	var buf bytes.Buffer
	require.NoError(t, train.Save(&buf, entries))

	loaded, err := train.Load[float64](&buf)
	require.NoError(t, err)
	require.Len(t, loaded, len(entries))

	for name, want := range entries {
		got, ok := loaded[name]
		require.True(t, ok, "missing entry %q", name)
		require.Equal(t, want.Shape(), got.Shape())
		for i, v := range want.Data() {
			// Payloads are half precision.
			assert.InDelta(t, v, got.Data()[i], 0.01, "entry %q element %d", name, i)
		}
	}
}

// TestCheckpoint_Deterministic tests that saving the same weights twice
// produces identical bytes.
func TestCheckpoint_Deterministic(t *testing.T) {
	entries := checkpointFixture(t)

	var a, b bytes.Buffer
	require.NoError(t, train.Save(&a, entries))
	require.NoError(t, train.Save(&b, entries))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

// TestCheckpoint_CorruptionDetected tests the checksum trailer.
func TestCheckpoint_CorruptionDetected(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, train.Save(&buf, checkpointFixture(t)))

	raw := buf.Bytes()
	raw[len(raw)/2] ^= 0xFF

	_, err := train.Load[float64](bytes.NewReader(raw))
	require.Error(t, err)
	assert.True(t, errors.Is(err, train.ErrChecksumMismatch), "got %v", err)
}

// TestCheckpoint_Truncated tests that a short file is rejected.
func TestCheckpoint_Truncated(t *testing.T) {
	_, err := train.Load[float64](bytes.NewReader([]byte("DL2C")))
	assert.Error(t, err)
}

// TestCheckpoint_File tests the file helpers.
func TestCheckpoint_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.dl2c")
	entries := checkpointFixture(t)

	require.NoError(t, train.SaveFile(path, entries))

	loaded, err := train.LoadFile[float64](path)
	require.NoError(t, err)
	assert.Len(t, loaded, len(entries))
}
