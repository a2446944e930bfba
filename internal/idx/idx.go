// Package idx reads and writes tensors in the IDX binary format, the
// container used by MNIST-style datasets.
//
// Layout:
//
//	magic: 0x00 0x00 <type code> <rank>
//	one big-endian uint32 per dimension
//	element data, big-endian, row-major
//
// Type codes: 0x08 uint8, 0x0C int32, 0x0D float32, 0x0E float64. The int8
// and int16 codes from the original format have no matching element kind
// here and are rejected.
package idx

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/tensor-types/tensortypes/internal/tensor"
)

const (
	codeUint8   = 0x08
	codeInt32   = 0x0C
	codeFloat32 = 0x0D
	codeFloat64 = 0x0E
)

// maxDecodeBytes caps the element data a header may claim. IDX files come
// from outside the process; a corrupt or hostile header must fail cleanly
// before any allocation, not after a multi-GB one.
const maxDecodeBytes = 1 << 30

func dataTypeFor(code byte) (tensor.DataType, error) {
	switch code {
	case codeUint8:
		return tensor.Uint8, nil
	case codeInt32:
		return tensor.Int32, nil
	case codeFloat32:
		return tensor.Float32, nil
	case codeFloat64:
		return tensor.Float64, nil
	default:
		return 0, fmt.Errorf("unsupported IDX type code 0x%02x", code)
	}
}

func codeFor(dtype tensor.DataType) (byte, error) {
	switch dtype {
	case tensor.Uint8:
		return codeUint8, nil
	case tensor.Int32:
		return codeInt32, nil
	case tensor.Float32:
		return codeFloat32, nil
	case tensor.Float64:
		return codeFloat64, nil
	default:
		return 0, fmt.Errorf("element kind %s has no IDX type code", dtype)
	}
}

// Decode reads one IDX tensor from r.
func Decode(r io.Reader) (*tensor.RawTensor, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("read magic: %w", err)
	}
	if magic[0] != 0 || magic[1] != 0 {
		return nil, fmt.Errorf("invalid magic %x: first two bytes must be zero", magic)
	}

	dtype, err := dataTypeFor(magic[2])
	if err != nil {
		return nil, err
	}

	rank := int(magic[3])
	shape := make(tensor.Shape, rank)
	for i := range shape {
		var dim uint32
		if err := binary.Read(r, binary.BigEndian, &dim); err != nil {
			return nil, fmt.Errorf("read dimension %d: %w", i, err)
		}
		shape[i] = int(dim)
	}

	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid header shape: %w", err)
	}
	numElements, err := shape.CheckedNumElements()
	if err != nil {
		return nil, fmt.Errorf("invalid header shape: %w", err)
	}
	if numElements > maxDecodeBytes/dtype.Size() {
		return nil, fmt.Errorf("header claims %d elements of %s, exceeding the %d byte decode limit",
			numElements, dtype, maxDecodeBytes)
	}

	raw, err := tensor.NewRaw(shape, dtype)
	if err != nil {
		return nil, err
	}

	switch dtype {
	case tensor.Uint8:
		_, err = io.ReadFull(r, raw.AsUint8())
	case tensor.Int32:
		err = binary.Read(r, binary.BigEndian, raw.AsInt32())
	case tensor.Float32:
		err = binary.Read(r, binary.BigEndian, raw.AsFloat32())
	case tensor.Float64:
		err = binary.Read(r, binary.BigEndian, raw.AsFloat64())
	}
	if err != nil {
		return nil, fmt.Errorf("read element data: %w", err)
	}
	return raw, nil
}

// Encode writes raw to w in IDX format.
func Encode(w io.Writer, raw *tensor.RawTensor) error {
	code, err := codeFor(raw.DType())
	if err != nil {
		return err
	}

	shape := raw.Shape()
	if len(shape) > 255 {
		return fmt.Errorf("rank %d exceeds the IDX maximum of 255", len(shape))
	}

	magic := [4]byte{0, 0, code, byte(len(shape))}
	if _, err := w.Write(magic[:]); err != nil {
		return fmt.Errorf("write magic: %w", err)
	}
	for i, dim := range shape {
		//nolint:gosec // dims validated positive at tensor creation
		if err := binary.Write(w, binary.BigEndian, uint32(dim)); err != nil {
			return fmt.Errorf("write dimension %d: %w", i, err)
		}
	}

	switch raw.DType() {
	case tensor.Uint8:
		_, err = w.Write(raw.AsUint8())
	case tensor.Int32:
		err = binary.Write(w, binary.BigEndian, raw.AsInt32())
	case tensor.Float32:
		err = binary.Write(w, binary.BigEndian, raw.AsFloat32())
	case tensor.Float64:
		err = binary.Write(w, binary.BigEndian, raw.AsFloat64())
	}
	if err != nil {
		return fmt.Errorf("write element data: %w", err)
	}
	return nil
}

// ReadFile decodes the IDX tensor stored at path.
func ReadFile(path string) (*tensor.RawTensor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	raw, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return raw, nil
}

// WriteFile encodes raw into a new IDX file at path.
func WriteFile(path string, raw *tensor.RawTensor) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, raw); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
