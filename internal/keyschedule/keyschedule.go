// Copyright (c) 2026, The Forkskinny128 Authors.
// See LICENSE for licensing information.

// Package keyschedule expands a single 16-byte tweakey word into the
// per-round half-state sequence the round engines in package round
// consume. Schedules are pure functions of their input key and the
// shared round-constant generator; once built they hold no mutable
// state and may be read concurrently from any number of goroutines.
package keyschedule

import "github.com/forkskinny-go/forkskinny128/internal/bitslice"

// HalfState is the top half of a tweakey matrix (rows 0 and 1) — the
// only part of a tweakey that ever contributes to a round's add-key.
type HalfState [2]uint32

// Schedule is one tweakey word's full per-round half-state sequence.
type Schedule = []HalfState

// Kind selects which per-round transform a tweakey word undergoes.
type Kind int

const (
	// TK1 is permuted each round but never LFSR-updated and never
	// absorbs a round constant.
	TK1 Kind = iota
	// TK2 is permuted and LFSR2-updated each round, and absorbs the
	// round constant plus the fixed forkcipher row-2 contribution.
	TK2
	// TK3 is permuted and LFSR3-updated each round, and absorbs the
	// round constant plus the fixed forkcipher row-2 contribution.
	TK3
)

// forkConstant is the forkcipher-specific fixed contribution folded
// into TK2/TK3's recorded half alongside the round constant, so that
// the round loop's row[2] add-key can stay a single "^= 0x02" per
// spec rather than looking anything up from the schedule.
const forkConstant = 0x00020000

// Build expands a 16-byte tweakey word into a schedule of the given
// length, one HalfState per round index in [0, rounds).
func Build(kind Kind, key [16]byte, rounds int) []HalfState {
	var tk [4]bitslice.Row
	tk[0] = loadRow(key[0:4])
	tk[1] = loadRow(key[4:8])
	tk[2] = loadRow(key[8:12])
	tk[3] = loadRow(key[12:16])

	schedule := make([]HalfState, rounds)
	rc := roundConstantGenerator()

	for i := 0; i < rounds; i++ {
		half := HalfState{tk[0], tk[1]}

		if kind != TK1 {
			c := rc()
			half[0] ^= uint32(c&0x0F) ^ forkConstant
			half[1] ^= uint32(c >> 4)
		}

		schedule[i] = half

		bitslice.PermuteTK(&tk)

		switch kind {
		case TK2:
			tk[0] = bitslice.LFSR2(tk[0])
			tk[1] = bitslice.LFSR2(tk[1])
		case TK3:
			tk[0] = bitslice.LFSR3(tk[0])
			tk[1] = bitslice.LFSR3(tk[1])
		}
	}

	return schedule
}

func loadRow(b []byte) bitslice.Row {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// roundConstantGenerator returns a closure producing successive Skinny
// round constants from the standard 6-bit affine LFSR, starting with
// 0x01 as required by spec (the sequence is generated rather than
// looked up from a fixed table so that the 87-round 128/384 schedule
// can draw as many constants as it needs without truncating at the
// traditional 62-entry table length).
func roundConstantGenerator() func() uint8 {
	state := uint8(0)
	return func() uint8 {
		bit := ((state >> 4) ^ (state >> 5) ^ 1) & 1
		state = ((state << 1) | bit) & 0x3F
		return state
	}
}
