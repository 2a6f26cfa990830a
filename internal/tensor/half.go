package tensor

import (
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// Float16 interchange. Checkpoints store tensor payloads as IEEE 754
// half-precision bits to halve their size; precision loss is acceptable
// there because checkpoints hold learned weights, not exact arithmetic.

// EncodeFloat16 returns the tensor's elements as half-precision bit
// patterns in row-major order.
func (t *Tensor[T]) EncodeFloat16() []uint16 {
	bits := make([]uint16, len(t.data))
	for i, v := range t.data {
		bits[i] = float16.Fromfloat32(float32(v)).Bits()
	}
	return bits
}

// DecodeFloat16 builds a tensor from half-precision bit patterns.
func DecodeFloat16[T Float](bits []uint16, shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "tensor.DecodeFloat16")
	}
	if len(bits) != shape.NumElements() {
		return nil, errors.Errorf("tensor.DecodeFloat16: %d values cannot fill shape %s (%d elements)",
			len(bits), shape, shape.NumElements())
	}
	t := &Tensor[T]{
		shape: shape.Clone(),
		data:  make([]T, len(bits)),
	}
	for i, b := range bits {
		t.data[i] = T(float16.Frombits(b).Float32())
	}
	return t, nil
}
