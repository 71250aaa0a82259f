package pack

import (
	"iter"

	"github.com/arloliu/numpack/format"
	"github.com/arloliu/numpack/internal/pool"
	"github.com/arloliu/numpack/scalar"
)

// Stream windows values into chunk-sized windows and yields one Result per
// window, lazily.
//
// The chunker runs a two-state machine. While undetermined, each window is
// scanned and selected independently: the first window that selects a
// candidate is packed and freezes that type for the rest of the stream;
// windows that select nothing are yielded as fallbacks and leave the state
// undetermined. Once frozen, every later window is packed as the frozen
// type, and a window violating it degrades to a fallback for just that
// window. The frozen type never resets and never widens, so earlier output
// stays valid; a stream whose values drift across types yields heterogeneous
// windows by design.
//
// Streaming never raises selection errors: WithStrict has no effect here,
// and a violating window is a fallback, not a failure. Fallback windows are
// subslices of values. The final partial window is flushed. The returned
// iterator is single-pass; it may be abandoned early at no cost.
//
// Parameters:
//   - values: The sequence to window and pack
//   - opts: Selection options; WithChunkSize sets the window length
//
// Returns:
//   - iter.Seq[Result]: One PackedBuffer or Fallback per window
//   - error: Option validation error
func Stream(values []scalar.Value, opts ...Option) (iter.Seq[Result], error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return func(yield func(Result) bool) {
		fixed := format.TypeInvalid
		for start := 0; start < len(values); start += cfg.chunkSize {
			end := min(start+cfg.chunkSize, len(values))
			if !yield(packWindow(values[start:end], cfg, &fixed)) {
				return
			}
		}
	}, nil
}

// StreamSeq is Stream over an arbitrary value sequence, for inputs too
// large or too lazy to materialize as a slice.
//
// Windows are staged in a pooled buffer. Packed windows copy their payload
// out, so the stage is recycled; fallback windows escape to the caller and
// own their storage. Semantics otherwise match Stream exactly.
func StreamSeq(seq iter.Seq[scalar.Value], opts ...Option) (iter.Seq[Result], error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return func(yield func(Result) bool) {
		window, release := pool.GetValueSlice(cfg.chunkSize)
		window = window[:0]
		defer func() { release() }()

		fixed := format.TypeInvalid

		emit := func() bool {
			res := packWindow(window, cfg, &fixed)
			ok := yield(res)
			if res.IsFallback() {
				// The window escaped inside the fallback; detach it from
				// the pool and stage the next window in a fresh slice.
				window, release = pool.GetValueSlice(cfg.chunkSize)
			}
			window = window[:0]

			return ok
		}

		for v := range seq {
			window = append(window, v)
			if len(window) == cfg.chunkSize {
				if !emit() {
					return
				}
			}
		}

		if len(window) > 0 {
			emit()
		}
	}, nil
}

// packWindow advances the chunker state machine by one window.
//
// A window that selects a candidate but then fails to pack (possible only
// when WithSampleSize hides part of the window from the scanner) degrades
// to a fallback and does not freeze the type.
func packWindow(window []scalar.Value, cfg *Config, fixed *format.TypeCode) Result {
	code := *fixed
	if code == format.TypeInvalid {
		or := scan(window, cfg, false)
		cand, ok := chooseCandidate(or, cfg)
		if !ok {
			return newFallback(window)
		}
		code = cand.Code
	}

	payload, err := encodeValues(window, code, cfg.engine)
	if err != nil {
		return newFallback(window)
	}

	*fixed = code

	return newPackedBuffer(code, len(window), payload, cfg.engine)
}
