package graphmodel

import (
	"encoding/binary"
	"fmt"
)

// EdgeValue is the persisted per-neighbor edge payload (spec §6): a 2-byte
// partition label followed by a 1-byte weight, 3 bytes total.
type EdgeValue struct {
	Partition int16
	Weight    int8
}

// EdgeValueSize is the fixed wire size of EdgeValue in bytes.
const EdgeValueSize = 3

// ErrShortBuffer is returned by UnmarshalBinary when fewer than
// EdgeValueSize bytes are available.
var ErrShortBuffer = fmt.Errorf("graphmodel: buffer shorter than %d bytes", EdgeValueSize)

// MarshalBinary encodes v as big-endian int16 partition || int8 weight.
func (v EdgeValue) MarshalBinary() ([]byte, error) {
	buf := make([]byte, EdgeValueSize)
	binary.BigEndian.PutUint16(buf[0:2], uint16(v.Partition))
	buf[2] = byte(v.Weight)
	return buf, nil
}

// UnmarshalBinary decodes v from a big-endian int16 partition || int8 weight
// buffer. Returns ErrShortBuffer if data is too short.
func (v *EdgeValue) UnmarshalBinary(data []byte) error {
	if len(data) < EdgeValueSize {
		return ErrShortBuffer
	}
	v.Partition = int16(binary.BigEndian.Uint16(data[0:2]))
	v.Weight = int8(data[2])
	return nil
}

// VertexValue is the persisted per-vertex checkpoint payload: an 8-byte
// vertex ID followed by its 2-byte current partition label, 10 bytes total —
// the binary counterpart of the text vertex-value input format (spec §6).
type VertexValue struct {
	ID        int64
	Partition int16
}

// VertexValueSize is the fixed wire size of VertexValue in bytes.
const VertexValueSize = 10

// ErrVertexValueShortBuffer is returned by UnmarshalBinary when fewer than
// VertexValueSize bytes are available.
var ErrVertexValueShortBuffer = fmt.Errorf("graphmodel: buffer shorter than %d bytes", VertexValueSize)

// MarshalBinary encodes v as big-endian int64 id || int16 partition.
func (v VertexValue) MarshalBinary() ([]byte, error) {
	buf := make([]byte, VertexValueSize)
	binary.BigEndian.PutUint64(buf[0:8], uint64(v.ID))
	binary.BigEndian.PutUint16(buf[8:10], uint16(v.Partition))
	return buf, nil
}

// UnmarshalBinary decodes v from a big-endian int64 id || int16 partition
// buffer. Returns ErrVertexValueShortBuffer if data is too short.
func (v *VertexValue) UnmarshalBinary(data []byte) error {
	if len(data) < VertexValueSize {
		return ErrVertexValueShortBuffer
	}
	v.ID = int64(binary.BigEndian.Uint64(data[0:8]))
	v.Partition = int16(binary.BigEndian.Uint16(data[8:10]))
	return nil
}
