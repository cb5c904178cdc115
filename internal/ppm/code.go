package ppm

import "github.com/deepteams/pep/internal/arith"

// EncodeSymbol codes one packed symbol sym (0..255) against e, updating the
// model state exactly as spec.md §4.4 describes: a context hit is coded
// directly; a miss escapes to the order-0 table, installing sym in the
// context table for next time.
func (m *Model) EncodeSymbol(e *arith.Encoder, sym byte) {
	s := int(sym)
	ctx := &m.Contexts[m.ctxID]

	if ctx.Sum != 0 && ctx.Freq[s] != 0 {
		lo, hi := ctx.cumRange(s)
		e.Encode(lo, hi, ctx.Sum)
		ctx.bump(s)
	} else {
		if ctx.Sum != 0 {
			lo, hi := ctx.cumRange(Escape)
			e.Encode(lo, hi, ctx.Sum)
			ctx.Freq[Escape]++
			ctx.Sum++
		}
		lo, hi := m.Order0.cumRange(s)
		e.Encode(lo, hi, m.Order0.Sum)
		if ctx.Sum == 0 {
			ctx.Freq[Escape] = 1
			ctx.Sum = 1
		}
		ctx.Freq[s] = 1
		ctx.Sum++
		m.Order0.bump(s)
	}
	m.advance(s)
}

// DecodeSymbol decodes one packed symbol from d, mirroring EncodeSymbol's
// state transitions exactly. maxSymbols bounds the per-table linear scan
// (see Table.find).
func (m *Model) DecodeSymbol(d *arith.Decoder, maxSymbols int) byte {
	ctx := &m.Contexts[m.ctxID]
	var sym int
	escaped := false

	if ctx.Sum != 0 {
		target := d.DecodeFreq(ctx.Sum)
		lo, hi, s := ctx.find(target, maxSymbols)
		d.Update(lo, hi)
		if s == Escape {
			ctx.Freq[Escape]++
			ctx.Sum++
			escaped = true
		} else {
			sym = s
			ctx.bump(s)
		}
	}

	if ctx.Sum == 0 || escaped {
		target := d.DecodeFreq(m.Order0.Sum)
		lo, hi, s := m.Order0.find(target, maxSymbols)
		d.Update(lo, hi)
		sym = s
		if !escaped {
			// Fresh context: the order-2 table had no escape coded at all.
			ctx.Freq[Escape] = 1
			ctx.Sum = 1
		}
		ctx.Freq[sym] = 1
		ctx.Sum++
		m.Order0.bump(sym)
	}

	m.advance(sym)
	return byte(sym)
}
