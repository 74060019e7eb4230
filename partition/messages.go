package partition

import (
	"encoding/binary"
	"fmt"
	"math"
)

// MessageSize is the fixed wire size of Message in bytes (spec §6):
// int64 sourceId | int16 partition | float64 signal.
const MessageSize = 18

// Message is the wire-compatible PartitionMessage of spec §3/§6, carried as
// the Body of a bsp.Message. Signal canonicalizes to 0.0 when a message
// carries none (Design Notes §9 Open Question 2 — the source observably
// left it uninitialized; this port always writes an explicit default).
type Message struct {
	SourceID  int64
	Partition int16
	Signal    float64
}

// MarshalBinary encodes m as big-endian int64 || int16 || float64.
func (m Message) MarshalBinary() ([]byte, error) {
	buf := make([]byte, MessageSize)
	binary.BigEndian.PutUint64(buf[0:8], uint64(m.SourceID))
	binary.BigEndian.PutUint16(buf[8:10], uint16(m.Partition))
	binary.BigEndian.PutUint64(buf[10:18], math.Float64bits(m.Signal))
	return buf, nil
}

// UnmarshalBinary decodes m from an 18-byte big-endian buffer.
func (m *Message) UnmarshalBinary(data []byte) error {
	if len(data) < MessageSize {
		return fmt.Errorf("partition: message buffer shorter than %d bytes", MessageSize)
	}
	m.SourceID = int64(binary.BigEndian.Uint64(data[0:8]))
	m.Partition = int16(binary.BigEndian.Uint16(data[8:10]))
	m.Signal = math.Float64frombits(binary.BigEndian.Uint64(data[10:18]))
	return nil
}

// messageKind tags a bsp.Message's Body in-process so the receiving stage
// can assert it only ever sees the kind its own protocol step expects
// (spec §7 "protocol violation"). It is never serialized — the wire layout
// above is exactly the 18 bytes spec §6 mandates, with no room for a tag.
type messageKind int8

const (
	// kindSignal is a score-and-propose broadcast: (self, reinforced, 1.0),
	// consumed by the next (migration) superstep's signal absorption.
	kindSignal messageKind = iota
	// kindLabel is an initializer/migration-stage announcement:
	// (self, partition), consumed by the next (propose) superstep's
	// migration-message absorption.
	kindLabel
)

// envelope is the in-process bsp.Message.Body carrying both the
// wire-shaped Message and its kind tag.
type envelope struct {
	Msg  Message
	Kind messageKind
}
