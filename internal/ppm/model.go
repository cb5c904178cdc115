// Package ppm implements the adaptive Order-2 Prediction-by-Partial-Matching
// model that drives PEP's arithmetic coder. Each packed symbol is coded
// against a 257-entry frequency table (256 packed-symbol values plus an
// escape) selected by the last two packed symbols; a miss in the order-2
// table escapes to a single order-0 fallback table.
//
// The table-rescaling and escape-frequency bookkeeping mirror the
// frequency-table maintenance style of the teacher's Huffman code builder
// (internal/lossless/huffman.go in the source tree this package was
// adapted from: both maintain per-symbol counts and periodically
// renormalize them), generalized here to an adaptive model instead of a
// static one-shot tree build.
package ppm

import "sync"

// NumSymbols is the packed-symbol alphabet size (one byte, 0..255).
const NumSymbols = 256

// Escape is the reserved pseudo-symbol meaning "fall back to the order-0
// table."
const Escape = NumSymbols

// TableSize is the number of entries in a frequency table: every packed
// symbol value plus the escape.
const TableSize = NumSymbols + 1

// NumContexts is the number of order-2 context tables, indexed by the low
// 8 bits of a rolling history of the last two packed symbols.
const NumContexts = 256

// FreqMax is the rescale trigger: once a table entry's frequency exceeds
// this, every non-zero entry in the table is divided by roughly four to keep
// probabilities from saturating.
const FreqMax = 4 * TableSize

// Table is a single frequency table: 257 counters plus their running sum.
type Table struct {
	Freq [TableSize]uint16
	Sum  uint32
}

// reset zeroes t back to an empty (order-2 style) table.
func (t *Table) reset() {
	for i := range t.Freq {
		t.Freq[i] = 0
	}
	t.Sum = 0
}

// resetOrder0 initializes t as the order-0 fallback: every entry starts at
// frequency 1.
func (t *Table) resetOrder0() {
	for i := range t.Freq {
		t.Freq[i] = 1
	}
	t.Sum = TableSize
}

// cumRange returns the cumulative [lo, hi) range of sym within t, i.e. the
// sum of frequencies before sym and sym's own frequency.
func (t *Table) cumRange(sym int) (lo, hi uint32) {
	for i := 0; i < sym; i++ {
		lo += uint32(t.Freq[i])
	}
	return lo, lo + uint32(t.Freq[sym])
}

// find locates the symbol whose cumulative range contains target, scanning
// at most maxSymbols+1 literal slots before falling back to the escape
// entry. Literal symbols above maxSymbols can never have been encoded (by
// construction: maxSymbols is the largest packed-symbol byte the encoder
// ever produced). In an order-2 table their frequencies are always 0; in
// the order-0 table they keep their initial count of 1 but lie above every
// coded symbol in cumulative order, so skipping them does not change which
// symbol a valid target selects — this is the bound spec.md §9's
// "max_symbols derivation" open question asks implementations to pick.
func (t *Table) find(target uint32, maxSymbols int) (lo, hi uint32, sym int) {
	limit := maxSymbols + 1
	if limit > NumSymbols {
		limit = NumSymbols
	}
	var cum uint32
	for s := 0; s < limit; s++ {
		f := uint32(t.Freq[s])
		if f == 0 {
			continue
		}
		if cum+f > target {
			return cum, cum + f, s
		}
		cum += f
	}
	f := uint32(t.Freq[Escape])
	return cum, cum + f, Escape
}

// bump applies the post-emission update rule: freq[sym] += 2, sum += 2,
// rescaling if the cap is exceeded.
func (t *Table) bump(sym int) {
	t.Freq[sym] += 2
	t.Sum += 2
	if t.Freq[sym] > FreqMax {
		t.rescale()
	}
}

// rescale shrinks frequencies to keep the table from saturating.
// Zero entries stay zero; entries at or below 2 collapse to 1; everything
// else is quartered with a +3 bias for rounding.
func (t *Table) rescale() {
	var sum uint32
	for i, f := range t.Freq {
		switch {
		case f == 0:
		case f <= 2:
			t.Freq[i] = 1
		default:
			t.Freq[i] = (f + 3) >> 2
		}
		sum += uint32(t.Freq[i])
	}
	t.Sum = sum
}

// Model holds the full coder state for one compress or decompress call: the
// 256 order-2 context tables, the order-0 fallback, and the rolling context
// id. Models are never shared across concurrent calls; Acquire/Release pool
// them to amortize their ~130 KB footprint.
type Model struct {
	Contexts [NumContexts]Table
	Order0   Table
	ctxID    int
}

// reset returns m to its just-constructed state (fresh order-2 tables, an
// order-0 table seeded with frequency 1 everywhere, context id 0).
func (m *Model) reset() {
	for i := range m.Contexts {
		m.Contexts[i].reset()
	}
	m.Order0.resetOrder0()
	m.ctxID = 0
}

var modelPool = sync.Pool{New: func() any { return new(Model) }}

// Acquire returns a freshly reset Model, reusing a pooled allocation when
// possible. Callers must return it with Release when done.
func Acquire() *Model {
	m := modelPool.Get().(*Model)
	m.reset()
	return m
}

// Release returns m to the pool. m must not be used afterward.
func Release(m *Model) {
	modelPool.Put(m)
}

// advance rolls the context id forward after coding sym.
func (m *Model) advance(sym int) {
	m.ctxID = ((m.ctxID << 8) | sym) & (NumContexts - 1)
}
