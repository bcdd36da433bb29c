// Package hashing provides duplicate detection for chess positions.
package hashing

import (
	"hash/fnv"

	"github.com/lgbarn/fenboard-go/internal/chess"
)

// Hash returns a stable 64-bit FNV-1a hash of the board's slots.
func Hash(board chess.Board) uint64 {
	var buf [chess.NumSlots]byte
	for i := range buf {
		buf[i] = byte(board.At(i))
	}
	h := fnv.New64a()
	h.Write(buf[:]) //nolint:errcheck // hash.Hash writes never fail
	return h.Sum64()
}

// DuplicateDetector tracks seen positions.
type DuplicateDetector struct {
	// seen maps each unique board to the index it was first seen at
	seen map[chess.Board]int
	// maxCapacity limits unique entries; 0 means unlimited
	maxCapacity    int
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &DuplicateDetector{
		seen:        make(map[chess.Board]int),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd reports whether board was seen before and, if so, the index
// it was first recorded with. New boards are recorded under index unless
// the detector is full.
func (d *DuplicateDetector) CheckAndAdd(board chess.Board, index int) (first int, duplicate bool) {
	if first, ok := d.seen[board]; ok {
		d.duplicateCount++
		return first, true
	}
	if !d.IsFull() {
		d.seen[board] = index
	}
	return index, false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of recorded unique positions.
func (d *DuplicateDetector) UniqueCount() int {
	return len(d.seen)
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && len(d.seen) >= d.maxCapacity
}

// Reset clears all recorded positions.
func (d *DuplicateDetector) Reset() {
	d.seen = make(map[chess.Board]int)
	d.duplicateCount = 0
}

// DuplicateChecker is satisfied by both detectors.
type DuplicateChecker interface {
	CheckAndAdd(board chess.Board, index int) (first int, duplicate bool)
	DuplicateCount() int
	UniqueCount() int
}
