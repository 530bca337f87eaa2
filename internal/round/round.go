// Copyright (c) 2026, The Forkskinny128 Authors.
// See LICENSE for licensing information.

// Package round implements the Skinny-128 round function and its
// inverse as index-windowed loops over a precomputed set of tweakey
// schedules. The same engine serves both the 2-tweakey (ForkSkinny-128/256)
// and 3-tweakey (ForkSkinny-128/384) variants: callers simply pass two or
// three schedules, which are XORed together at each round's add-key step.
package round

import (
	"fmt"

	"github.com/forkskinny-go/forkskinny128/internal/bitslice"
	"github.com/forkskinny-go/forkskinny128/internal/keyschedule"
)

// State is the 128-bit cipher state as four row words.
type State [4]uint32

// Forward runs the round function over the half-open window [from, to),
// consuming schedules[*][i] at round i. Panics if any schedule is
// shorter than to — a schedule built shorter than the window a caller
// asks for is a programming error, not a runtime data error.
func Forward(s *State, schedules []keyschedule.Schedule, from, to int) {
	for i := from; i < to; i++ {
		s[0] = bitslice.Sbox(s[0])
		s[1] = bitslice.Sbox(s[1])
		s[2] = bitslice.Sbox(s[2])
		s[3] = bitslice.Sbox(s[3])

		k0, k1 := addKey(schedules, i)
		s[0] ^= k0
		s[1] ^= k1
		s[2] ^= 0x02

		s[1] = bitslice.RotateRightCells(s[1], 1)
		s[2] = bitslice.RotateRightCells(s[2], 2)
		s[3] = bitslice.RotateRightCells(s[3], 3)

		s[1] ^= s[2]
		s[2] ^= s[0]
		t := s[3] ^ s[2]
		s[3] = s[2]
		s[2] = s[1]
		s[1] = s[0]
		s[0] = t
	}
}

// Inverse runs the inverse round function over the window (to, from],
// iterating i = from-1, from-2, ..., to and consuming schedules[*][i]
// at each step — the mirror image of Forward's indexing.
func Inverse(s *State, schedules []keyschedule.Schedule, from, to int) {
	for i := from - 1; i >= to; i-- {
		t := s[3]
		s[3] = s[0]
		s[0] = s[1]
		s[1] = s[2]
		s[3] ^= t
		s[2] = t ^ s[0]
		s[1] ^= s[2]

		s[1] = bitslice.RotateRightCells(s[1], 3)
		s[2] = bitslice.RotateRightCells(s[2], 2)
		s[3] = bitslice.RotateRightCells(s[3], 1)

		k0, k1 := addKey(schedules, i)
		s[0] ^= k0
		s[1] ^= k1
		s[2] ^= 0x02

		s[0] = bitslice.InvSbox(s[0])
		s[1] = bitslice.InvSbox(s[1])
		s[2] = bitslice.InvSbox(s[2])
		s[3] = bitslice.InvSbox(s[3])
	}
}

func addKey(schedules []keyschedule.Schedule, i int) (row0, row1 uint32) {
	for _, sched := range schedules {
		if i >= len(sched) {
			panic(fmt.Sprintf("round: schedule of length %d has no entry for round %d", len(sched), i))
		}
		row0 ^= sched[i][0]
		row1 ^= sched[i][1]
	}
	return row0, row1
}
