package pack

import (
	"fmt"

	"github.com/arloliu/numpack/encoding"
	"github.com/arloliu/numpack/endian"
	"github.com/arloliu/numpack/errs"
	"github.com/arloliu/numpack/format"
	"github.com/arloliu/numpack/scalar"
)

// Select scans values, chooses the narrowest candidate type that covers
// them under the configured policy, and packs them into a PackedBuffer.
//
// When no candidate fits, the outcome depends on the failure class:
//   - Non-numeric data always returns a Fallback wrapping the original
//     values, regardless of WithStrict.
//   - Numeric data that no candidate covers returns a Fallback by default,
//     or a SelectionError wrapping ErrNoFittingType under WithStrict.
//
// Empty input returns an empty Fallback. Packing always consumes all of
// values; WithSampleSize bounds only the scan, and a value beyond the
// sampled window that violates the chosen type surfaces as an error rather
// than silently corrupting the buffer.
//
// Parameters:
//   - values: The sequence to pack
//   - opts: Selection options (policy, bounds, strictness, byte order, ...)
//
// Returns:
//   - Result: PackedBuffer or Fallback
//   - error: Option validation error, strict selection failure, or packing
//     failure after an under-sampled scan
func Select(values []scalar.Value, opts ...Option) (Result, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return selectWith(values, cfg)
}

func selectWith(values []scalar.Value, cfg *Config) (Result, error) {
	if len(values) == 0 {
		return newFallback(values), nil
	}

	or := scan(values, cfg, false)
	if or.Kind == KindNonNumeric {
		return newFallback(values), nil
	}

	cand, ok := chooseCandidate(or, cfg)
	if !ok {
		if cfg.strict {
			return nil, strictFailure(values, or, cfg)
		}

		return newFallback(values), nil
	}

	payload, err := encodeValues(values, cand.Code, cfg.engine)
	if err != nil {
		return nil, fmt.Errorf("failed to pack values as %s: %w", cand.Code, err)
	}

	return newPackedBuffer(cand.Code, len(values), payload, cfg.engine), nil
}

// Encode packs values as the given catalog type, skipping selection.
//
// Every value must fit the type exactly as the selector would require:
// integer slots take only integral kinds within range, float32 takes any
// numeric whose finite magnitude fits, float64 takes any numeric. The first
// violation aborts with a SelectionError; nothing is silently truncated.
//
// Only the byte order options affect Encode; policy options are selection
// concerns and are ignored here.
//
// Parameters:
//   - values: The sequence to pack
//   - code: The catalog element type to pack as
//   - opts: Byte order options
//
// Returns:
//   - PackedBuffer: The packed sequence
//   - error: ErrUnknownType for non-catalog codes, or the first violation
func Encode(values []scalar.Value, code format.TypeCode, opts ...Option) (PackedBuffer, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return PackedBuffer{}, err
	}

	return encodeWith(values, code, cfg)
}

func encodeWith(values []scalar.Value, code format.TypeCode, cfg *Config) (PackedBuffer, error) {
	if !code.IsValid() {
		return PackedBuffer{}, fmt.Errorf("%w: 0x%02x", errs.ErrUnknownType, uint8(code))
	}

	payload, err := encodeValues(values, code, cfg.engine)
	if err != nil {
		return PackedBuffer{}, fmt.Errorf("failed to pack values as %s: %w", code, err)
	}

	return newPackedBuffer(code, len(values), payload, cfg.engine), nil
}

// encodeValues runs the fixed-width encoder over values and returns a copy
// of its payload, so the pooled encoder buffer can be recycled immediately.
func encodeValues(values []scalar.Value, code format.TypeCode, engine endian.EndianEngine) ([]byte, error) {
	enc, err := encoding.NewFixedEncoder(code, engine)
	if err != nil {
		return nil, err
	}

	if err := enc.WriteSlice(values); err != nil {
		enc.Finish()

		return nil, err
	}

	payload := make([]byte, enc.Size())
	copy(payload, enc.Bytes())
	enc.Finish()

	return payload, nil
}

// strictFailure builds the SelectionError for a strict-mode selection miss.
// Floats excluded by WithNoFloat report the first float element against
// "integers only"; otherwise the error pinpoints the first element the last
// attempted candidate could not hold.
func strictFailure(values []scalar.Value, or ObservedRange, cfg *Config) error {
	if cfg.noFloat && or.Kind == KindFloat {
		idx := firstFloatIndex(values)

		return errs.NewSelectionError(errs.ErrNoFittingType, idx, values[idx], "integers only")
	}

	order := candidateOrder(cfg, or.HasNegative)
	if len(order) == 0 {
		return errs.NewSelectionError(errs.ErrNoFittingType, 0, values[0], "no fitting type")
	}

	last := order[len(order)-1]
	for i, v := range values {
		if !coversValue(last, v) {
			return errs.NewSelectionError(errs.ErrNoFittingType, i, v, last.String())
		}
	}

	return errs.NewSelectionError(errs.ErrNoFittingType, 0, values[0], last.String())
}

func firstFloatIndex(values []scalar.Value) int {
	for i, v := range values {
		if v.Kind() == scalar.KindFloat {
			return i
		}
	}

	return 0
}
