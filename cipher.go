// Copyright (c) 2026, The Forkskinny128 Authors.
// See LICENSE for licensing information.

// Package forkskinny128 implements the ForkSkinny-128 forkcipher core:
// a tweakable block cipher that produces two 128-bit outputs — a left
// and a right ciphertext block — from one 128-bit input and a tweakey,
// by sharing an initial round trunk and branching into two independently
// keyed tails. See NewSchedules, Encrypt and DecryptFromRight.
//
// The core is synchronous and allocation-free beyond its own output
// buffers: there are no goroutines, no I/O, and no cipher mode (CTR,
// CBC, AEAD) bundled here — those are the job of a higher-level caller
// built on top of this primitive.
package forkskinny128

import (
	"github.com/forkskinny-go/forkskinny128/internal/round"
)

// branchingConstant is the fixed, non-keyed 128-bit value XORed into the
// forking state to produce the starting state of the left tail.
var branchingConstant = round.State{0x08040201, 0x82412010, 0x28140a05, 0x8844a251}

func loadState(b [16]byte) round.State {
	var s round.State
	for i := range s {
		s[i] = uint32(b[4*i]) | uint32(b[4*i+1])<<8 | uint32(b[4*i+2])<<16 | uint32(b[4*i+3])<<24
	}
	return s
}

func storeState(s round.State) [16]byte {
	var b [16]byte
	for i, row := range s {
		b[4*i] = byte(row)
		b[4*i+1] = byte(row >> 8)
		b[4*i+2] = byte(row >> 16)
		b[4*i+3] = byte(row >> 24)
	}
	return b
}

func xorBranchingConstant(s *round.State) {
	for i := range s {
		s[i] ^= branchingConstant[i]
	}
}

// EncryptOutputs holds the outputs of Encrypt that were actually
// requested; an output that was not requested is a nil pointer.
type EncryptOutputs struct {
	Left  *[16]byte
	Right *[16]byte
}

// Encrypt runs ForkSkinny-128 forward: ROUNDS_BEFORE common rounds from
// input to the forking state, then — as requested — ROUNDS_AFTER rounds
// on the right tail and/or the branching constant followed by
// ROUNDS_AFTER rounds on the left tail. When both outputs are requested
// the forking state is computed once and consumed by both tails from an
// explicit copy (spec's copy-on-branch requirement).
func Encrypt(s *Schedules, input [16]byte, wantLeft, wantRight bool) (EncryptOutputs, error) {
	if s == nil {
		return EncryptOutputs{}, argErrorf("Encrypt", "nil Schedules")
	}

	var out EncryptOutputs
	if !wantLeft && !wantRight {
		return out, nil
	}

	forking := loadState(input)
	round.Forward(&forking, s.perKey, 0, s.before)

	if wantRight {
		right := forking
		round.Forward(&right, s.perKey, s.before, s.before+s.after)
		buf := storeState(right)
		out.Right = &buf
	}

	if wantLeft {
		left := forking
		xorBranchingConstant(&left)
		round.Forward(&left, s.perKey, s.before+s.after, s.before+2*s.after)
		buf := storeState(left)
		out.Left = &buf
	}

	return out, nil
}

// DecryptOutputs holds the outputs of DecryptFromRight that were
// actually requested; an output that was not requested is a nil pointer.
type DecryptOutputs struct {
	Left      *[16]byte
	Plaintext *[16]byte
}

// DecryptFromRight runs ForkSkinny-128 backward from a right ciphertext
// block: ROUNDS_AFTER inverse rounds recover the shared forking state,
// from which the left sibling output and/or the original plaintext can
// be reconstructed — the left output by XORing in the branching constant
// and running the forward left tail, the plaintext by continuing the
// inverse rounds back through ROUNDS_BEFORE. Decryption from the left
// output is not provided, per spec.
func DecryptFromRight(s *Schedules, right [16]byte, wantLeft, wantPlaintext bool) (DecryptOutputs, error) {
	if s == nil {
		return DecryptOutputs{}, argErrorf("DecryptFromRight", "nil Schedules")
	}

	var out DecryptOutputs
	if !wantLeft && !wantPlaintext {
		return out, nil
	}

	forking := loadState(right)
	round.Inverse(&forking, s.perKey, s.before+s.after, s.before)

	if wantLeft {
		left := forking
		xorBranchingConstant(&left)
		round.Forward(&left, s.perKey, s.before+s.after, s.before+2*s.after)
		buf := storeState(left)
		out.Left = &buf
	}

	if wantPlaintext {
		plain := forking
		round.Inverse(&plain, s.perKey, s.before, 0)
		buf := storeState(plain)
		out.Plaintext = &buf
	}

	return out, nil
}
