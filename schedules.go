// Copyright (c) 2026, The Forkskinny128 Authors.
// See LICENSE for licensing information.

package forkskinny128

import (
	"github.com/forkskinny-go/forkskinny128/internal/keyschedule"
)

// Schedules holds the fully-expanded per-tweakey-word round schedules
// for one Variant. It is immutable after NewSchedules returns and may be
// shared across any number of concurrent Encrypt/DecryptFromRight calls
// without synchronization — building it is the only allocation this
// package performs outside of per-call output buffers.
type Schedules struct {
	variant       Variant
	before, after int
	perKey        []keyschedule.Schedule
}

// NewSchedules expands the tweakey words for v. Callers must supply
// exactly v.tweakeyCount() 16-byte keys, in TK1, TK2, [TK3] order.
func NewSchedules(v Variant, keys ...[16]byte) (*Schedules, error) {
	if !v.valid() {
		return nil, argErrorf("NewSchedules", "unknown variant %d", int(v))
	}
	want := v.tweakeyCount()
	if len(keys) != want {
		return nil, argErrorf("NewSchedules", "%s needs %d tweakey words, got %d", v, want, len(keys))
	}

	before, after := v.roundCounts()
	total := before + 2*after

	kinds := []keyschedule.Kind{keyschedule.TK1, keyschedule.TK2, keyschedule.TK3}
	perKey := make([]keyschedule.Schedule, want)
	for i, key := range keys {
		perKey[i] = keyschedule.Build(kinds[i], key, total)
	}

	return &Schedules{variant: v, before: before, after: after, perKey: perKey}, nil
}

// Variant reports which ForkSkinny-128 variant s was built for.
func (s *Schedules) Variant() Variant {
	return s.variant
}
