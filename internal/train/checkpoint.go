package train

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"

	"github.com/mybuilderpal/DeepLearning.Two/internal/tensor"
)

// Checkpoint format:
//
//	magic "DL2C" | version u16 | entry count u32
//	per entry: name len u16 | name | rank u8 | dims u32… | payload len u32 | float16 bits u16…
//	sha256 checksum of everything above
//
// All integers little-endian. Payloads are half precision; loading a
// checkpoint loses the low mantissa bits of each weight, which is
// acceptable for learned parameters.

var checkpointMagic = [4]byte{'D', 'L', '2', 'C'}

const checkpointVersion uint16 = 1

// ErrChecksumMismatch reports a corrupted checkpoint.
var ErrChecksumMismatch = errors.New("checkpoint checksum mismatch")

// Save writes the named tensors as a checkpoint. Entries are written in
// sorted name order so the same weights always produce the same bytes.
func Save[T tensor.Float](w io.Writer, entries map[string]*tensor.Tensor[T]) error {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	var body bytes.Buffer
	body.Write(checkpointMagic[:])
	if err := binary.Write(&body, binary.LittleEndian, checkpointVersion); err != nil {
		return errors.Wrap(err, "checkpoint: write header")
	}
	if err := binary.Write(&body, binary.LittleEndian, uint32(len(names))); err != nil {
		return errors.Wrap(err, "checkpoint: write entry count")
	}

	for _, name := range names {
		t := entries[name]
		if err := writeEntry(&body, name, t); err != nil {
			return errors.Wrapf(err, "checkpoint: write entry %q", name)
		}
	}

	sum := sha256.Sum256(body.Bytes())
	if _, err := w.Write(body.Bytes()); err != nil {
		return errors.Wrap(err, "checkpoint: write body")
	}
	if _, err := w.Write(sum[:]); err != nil {
		return errors.Wrap(err, "checkpoint: write checksum")
	}
	return nil
}

func writeEntry[T tensor.Float](w *bytes.Buffer, name string, t *tensor.Tensor[T]) error {
	if len(name) > int(^uint16(0)) {
		return errors.Errorf("name too long (%d bytes)", len(name))
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(len(name))); err != nil {
		return err
	}
	w.WriteString(name)

	shape := t.Shape()
	if err := binary.Write(w, binary.LittleEndian, uint8(shape.Rank())); err != nil {
		return err
	}
	for _, dim := range shape {
		if err := binary.Write(w, binary.LittleEndian, uint32(dim)); err != nil {
			return err
		}
	}

	bits := t.EncodeFloat16()
	if err := binary.Write(w, binary.LittleEndian, uint32(len(bits))); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, bits)
}

// Load reads a checkpoint written by Save, validating the checksum
// before decoding any entry.
func Load[T tensor.Float](r io.Reader) (map[string]*tensor.Tensor[T], error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "checkpoint: read")
	}
	if len(raw) < len(checkpointMagic)+2+4+sha256.Size {
		return nil, errors.Errorf("checkpoint: truncated (%d bytes)", len(raw))
	}

	body, stored := raw[:len(raw)-sha256.Size], raw[len(raw)-sha256.Size:]
	sum := sha256.Sum256(body)
	if !bytes.Equal(sum[:], stored) {
		return nil, ErrChecksumMismatch
	}

	buf := bytes.NewReader(body)
	var magic [4]byte
	if _, err := io.ReadFull(buf, magic[:]); err != nil {
		return nil, errors.Wrap(err, "checkpoint: read magic")
	}
	if magic != checkpointMagic {
		return nil, errors.Errorf("checkpoint: bad magic %q", magic[:])
	}
	var version uint16
	if err := binary.Read(buf, binary.LittleEndian, &version); err != nil {
		return nil, errors.Wrap(err, "checkpoint: read version")
	}
	if version != checkpointVersion {
		return nil, errors.Errorf("checkpoint: unsupported version %d", version)
	}
	var count uint32
	if err := binary.Read(buf, binary.LittleEndian, &count); err != nil {
		return nil, errors.Wrap(err, "checkpoint: read entry count")
	}

	entries := make(map[string]*tensor.Tensor[T], count)
	for i := uint32(0); i < count; i++ {
		name, t, err := readEntry[T](buf)
		if err != nil {
			return nil, errors.Wrapf(err, "checkpoint: read entry %d", i)
		}
		entries[name] = t
	}
	return entries, nil
}

func readEntry[T tensor.Float](r *bytes.Reader) (string, *tensor.Tensor[T], error) {
	var nameLen uint16
	if err := binary.Read(r, binary.LittleEndian, &nameLen); err != nil {
		return "", nil, err
	}
	nameBytes := make([]byte, nameLen)
	if _, err := io.ReadFull(r, nameBytes); err != nil {
		return "", nil, err
	}

	var rank uint8
	if err := binary.Read(r, binary.LittleEndian, &rank); err != nil {
		return "", nil, err
	}
	shape := make(tensor.Shape, rank)
	for axis := range shape {
		var dim uint32
		if err := binary.Read(r, binary.LittleEndian, &dim); err != nil {
			return "", nil, err
		}
		shape[axis] = int(dim)
	}

	var payloadLen uint32
	if err := binary.Read(r, binary.LittleEndian, &payloadLen); err != nil {
		return "", nil, err
	}
	bits := make([]uint16, payloadLen)
	if err := binary.Read(r, binary.LittleEndian, bits); err != nil {
		return "", nil, err
	}

	t, err := tensor.DecodeFloat16[T](bits, shape)
	if err != nil {
		return "", nil, err
	}
	return string(nameBytes), t, nil
}

// SaveFile writes a checkpoint to path, replacing any existing file.
func SaveFile[T tensor.Float](path string, entries map[string]*tensor.Tensor[T]) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "checkpoint")
	}
	if err := Save(f, entries); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "checkpoint")
}

// LoadFile reads a checkpoint from path.
func LoadFile[T tensor.Float](path string) (map[string]*tensor.Tensor[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "checkpoint")
	}
	defer f.Close()
	return Load[T](f)
}
