// Package snowflake mints globally unique, time-ordered 64-bit identifiers
// for packages, audit actions, and uploaded files.
//
// ID layout (64 bits):
//   - 1 bit: sign, always 0
//   - 41 bits: milliseconds since the custom epoch (2020-01-01 00:00:00 UTC)
//   - 10 bits: machine id (0-1023)
//   - 12 bits: per-millisecond sequence (0-4095)
//
// A Generator owns its mutable sequence state behind a mutex and is passed
// explicitly to callers; there is no package-level singleton.
package snowflake

import (
	"errors"
	"sync"
	"time"

	"fulfillment/internal/pkg/errs"
)

// Epoch is the custom epoch in Unix milliseconds (2020-01-01 00:00:00 UTC).
const Epoch int64 = 1577836800000

const (
	machineIDBits = 10
	sequenceBits  = 12

	// MaxMachineID is the largest machine id the layout can carry.
	MaxMachineID = (1 << machineIDBits) - 1

	maxSequence = (1 << sequenceBits) - 1
)

// ErrClockRegression indicates the system clock moved backward relative to
// the last issued timestamp. The generator refuses to issue ids in this
// state; issuing one could collide with an id already handed out.
var ErrClockRegression = errors.New("clock moved backwards, refusing to generate id")

// Generator is a thread-safe Snowflake id generator.
// The zero value is unusable; construct with NewGenerator.
type Generator struct {
	mu            sync.Mutex
	machineID     int64
	sequence      int64
	lastTimestamp int64

	now func() int64
}

// NewGenerator creates a Generator for the given machine id.
// Returns an error if machineID is outside 0-1023.
func NewGenerator(machineID int64) (*Generator, error) {
	if machineID < 0 || machineID > MaxMachineID {
		return nil, errs.NewValueIsOutOfRangeError("machineID", machineID, 0, MaxMachineID)
	}
	return &Generator{
		machineID:     machineID,
		lastTimestamp: -1,
		now:           currentMillis,
	}, nil
}

// Next issues the next identifier.
//
// Two calls within the same millisecond increment the sequence; on sequence
// exhaustion the generator busy-waits for the next millisecond. If the
// clock is observed to run backward it returns ErrClockRegression, which
// callers must treat as unrecoverable.
func (g *Generator) Next() (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ts := g.now()
	if ts < g.lastTimestamp {
		return 0, ErrClockRegression
	}

	if ts == g.lastTimestamp {
		g.sequence = (g.sequence + 1) & maxSequence
		if g.sequence == 0 {
			ts = g.waitNextMillis(g.lastTimestamp)
		}
	} else {
		g.sequence = 0
	}
	g.lastTimestamp = ts

	id := ((ts - Epoch) << (machineIDBits + sequenceBits)) |
		(g.machineID << sequenceBits) |
		g.sequence
	return id, nil
}

// ID components recovered by Decompose.
type Parts struct {
	TimestampMs int64
	MachineID   int64
	Sequence    int64
}

// Time returns the id's timestamp as a time.Time.
func (p Parts) Time() time.Time {
	return time.UnixMilli(p.TimestampMs)
}

// Decompose splits an id back into its timestamp, machine id, and sequence.
func Decompose(id int64) Parts {
	return Parts{
		TimestampMs: (id >> (machineIDBits + sequenceBits)) + Epoch,
		MachineID:   (id >> sequenceBits) & MaxMachineID,
		Sequence:    id & maxSequence,
	}
}

func (g *Generator) waitNextMillis(last int64) int64 {
	ts := g.now()
	for ts <= last {
		ts = g.now()
	}
	return ts
}

func currentMillis() int64 {
	return time.Now().UnixMilli()
}
