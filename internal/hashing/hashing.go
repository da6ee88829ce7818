// Package hashing provides position keys and duplicate detection for
// replayed boards.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// HashCode is a cheap additive hash of the piece placement.
type HashCode uint32

const numSquares = chess.BoardSize * chess.BoardSize

// Zobrist keys, filled once from a fixed seed so keys are stable across runs.
var (
	pieceKeys    [2][int(chess.King)][numSquares]uint64
	sideKey      uint64
	castlingKeys [int(chess.AllCastling) + 1]uint64
	epKeys       [chess.BoardSize]uint64
)

func init() {
	next := splitMix64(0x9E3779B97F4A7C15)
	for c := range pieceKeys {
		for p := range pieceKeys[c] {
			for sq := range pieceKeys[c][p] {
				pieceKeys[c][p][sq] = next()
			}
		}
	}
	sideKey = next()
	for i := range castlingKeys {
		castlingKeys[i] = next()
	}
	for i := range epKeys {
		epKeys[i] = next()
	}
}

// splitMix64 returns a deterministic 64-bit generator.
func splitMix64(seed uint64) func() uint64 {
	state := seed
	return func() uint64 {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}
}

func squareIndex(pos chess.Position) int {
	return pos.Y*chess.BoardSize + pos.X
}

func colourIndex(c chess.Colour) int {
	if c == chess.White {
		return 0
	}
	return 1
}

// PositionKey returns the Zobrist key of the board: placement, side to
// move, castling rights and en passant file. Clocks are not included, so
// the same position reached by different move orders has the same key.
func PositionKey(board *chess.Board) uint64 {
	var key uint64
	for _, p := range board.Pieces() {
		key ^= pieceKeys[colourIndex(p.Colour)][int(p.Type)-1][squareIndex(p.Pos)]
	}
	if board.ToMove == chess.Black {
		key ^= sideKey
	}
	key ^= castlingKeys[board.Castling&chess.AllCastling]
	if board.EnPassant {
		key ^= epKeys[board.EPSquare.X]
	}
	return key
}

// WeakHash sums a per-square value for every piece. Collisions are
// common; it only confirms a PositionKey match.
func WeakHash(board *chess.Board) HashCode {
	var h HashCode
	for _, p := range board.Pieces() {
		h += HashCode(p.Letter()) * HashCode(squareIndex(p.Pos)+1)
	}
	return h
}

// Signature identifies a replayed board.
type Signature struct {
	Key   uint64
	Weak  HashCode
	Plies int // moves played to reach the board
}

// DuplicateDetector tracks the positions seen so far.
type DuplicateDetector struct {
	hashTable map[uint64][]Signature
	// exactMatch also requires the same number of plies
	exactMatch     bool
	maxCapacity    int
	count          int
	duplicateCount int
}

// NewDuplicateDetector creates a detector. maxCapacity of 0 means unlimited.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]Signature),
		exactMatch:  exactMatch,
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd reports whether board was seen before and records it if not.
// Once the detector is full new positions are no longer recorded.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board, plies int) bool {
	if board == nil {
		return false
	}

	sig := Signature{Key: PositionKey(board), Weak: WeakHash(board), Plies: plies}
	for _, existing := range d.hashTable[sig.Key] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Key] = append(d.hashTable[sig.Key], sig)
	d.count++
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Key != b.Key || a.Weak != b.Weak {
		return false
	}
	return !d.exactMatch || a.Plies == b.Plies
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return d.count
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.count >= d.maxCapacity
}

// Reset forgets every recorded position.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.count = 0
	d.duplicateCount = 0
}
