package pack

import (
	"fmt"

	"github.com/arloliu/numpack/endian"
	"github.com/arloliu/numpack/errs"
	"github.com/arloliu/numpack/format"
	"github.com/arloliu/numpack/internal/options"
)

// Policy selects the candidate ordering strategy used when choosing an
// element type for a sequence.
type Policy uint8

const (
	// PolicySmallest walks candidates ascending by bit width, preferring
	// unsigned over signed at equal width. This is the default and yields
	// the most compact buffer.
	PolicySmallest Policy = iota

	// PolicyBalanced walks candidates ascending by bit width, preferring
	// signed over unsigned at equal width. Useful when downstream consumers
	// handle signed types more naturally.
	PolicyBalanced

	// PolicyWide walks integer candidates descending by bit width, floats
	// last. Useful when the sequence is expected to grow toward wider
	// values and re-packing should be avoided.
	PolicyWide
)

func (p Policy) String() string {
	switch p {
	case PolicySmallest:
		return "smallest"
	case PolicyBalanced:
		return "balanced"
	case PolicyWide:
		return "wide"
	default:
		return "unknown"
	}
}

// DefaultChunkSize is the number of elements per window used by Stream when
// no chunk size option is given. 64Ki elements keeps windows comfortably
// inside L2 for every element width while amortizing per-window selection.
const DefaultChunkSize = 65536

// Config holds the selection and packing configuration.
//
// The zero value is not usable; configs are built through the option
// functions passed to the entry points.
type Config struct {
	engine              endian.EndianEngine
	sampleSize          int
	chunkSize           int
	minType             format.TypeCode
	maxType             format.TypeCode
	policy              Policy
	preferSigned        bool
	noFloat             bool
	strict              bool
	allowFloatDowngrade bool
}

// Option is the functional option type for the selection entry points.
type Option = options.Option[*Config]

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		engine:              endian.GetLittleEndianEngine(),
		chunkSize:           DefaultChunkSize,
		policy:              PolicySmallest,
		allowFloatDowngrade: true,
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) setPolicy(policy Policy) error {
	switch policy {
	case PolicySmallest, PolicyBalanced, PolicyWide:
		c.policy = policy
	default:
		return fmt.Errorf("invalid selection policy: %d", policy)
	}

	return nil
}

func (c *Config) setMinType(code format.TypeCode) error {
	if !code.IsValid() {
		return fmt.Errorf("%w: min type 0x%02x", errs.ErrUnknownType, uint8(code))
	}

	c.minType = code

	return nil
}

func (c *Config) setMaxType(code format.TypeCode) error {
	if !code.IsValid() {
		return fmt.Errorf("%w: max type 0x%02x", errs.ErrUnknownType, uint8(code))
	}

	c.maxType = code

	return nil
}

func (c *Config) setSampleSize(size int) error {
	if size < 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidSampleSize, size)
	}

	c.sampleSize = size

	return nil
}

func (c *Config) setChunkSize(size int) error {
	if size < 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidChunkSize, size)
	}

	if size == 0 {
		c.chunkSize = DefaultChunkSize
	} else {
		c.chunkSize = size
	}

	return nil
}

// WithPolicy sets the candidate ordering strategy.
//
// Parameters:
//   - policy: PolicySmallest, PolicyBalanced, or PolicyWide
//
// Returns an option that fails validation for any other value.
func WithPolicy(policy Policy) Option {
	return options.New(func(c *Config) error {
		return c.setPolicy(policy)
	})
}

// WithMinType restricts selection to candidates at or above the given type
// in the narrowness order. Candidates narrower than code are never chosen.
//
// Combining a min type above the max type produces an empty candidate set:
// selection then falls back (or fails in strict mode) for every input.
func WithMinType(code format.TypeCode) Option {
	return options.New(func(c *Config) error {
		return c.setMinType(code)
	})
}

// WithMaxType restricts selection to candidates at or below the given type
// in the narrowness order. Candidates wider than code are never chosen.
func WithMaxType(code format.TypeCode) Option {
	return options.New(func(c *Config) error {
		return c.setMaxType(code)
	})
}

// WithTypeRange bounds selection to candidates between minType and maxType
// inclusive. Equivalent to combining WithMinType and WithMaxType.
func WithTypeRange(minType, maxType format.TypeCode) Option {
	return options.New(func(c *Config) error {
		if err := c.setMinType(minType); err != nil {
			return err
		}

		return c.setMaxType(maxType)
	})
}

// WithPreferSigned makes selection prefer the signed candidate when both the
// signed and unsigned candidate of a width fit the observed range.
//
// Only PolicySmallest consults this tie-break; PolicyBalanced and PolicyWide
// already order signed before unsigned at every width.
func WithPreferSigned(prefer bool) Option {
	return options.NoError(func(c *Config) {
		c.preferSigned = prefer
	})
}

// WithNoFloat excludes both float candidates from selection. Sequences
// containing float elements then fall back, or fail with an "integers only"
// selection error in strict mode.
func WithNoFloat(noFloat bool) Option {
	return options.NoError(func(c *Config) {
		c.noFloat = noFloat
	})
}

// WithStrict makes selection failures an error instead of a fallback.
//
// Strict mode applies only to numeric sequences that no candidate covers
// under the configured bounds. Sequences containing non-numeric elements
// always fall back; they are never a strict failure.
func WithStrict(strict bool) Option {
	return options.NoError(func(c *Config) {
		c.strict = strict
	})
}

// WithFloatDowngrade controls whether float sequences may pack as float32.
//
// When enabled (the default), float32 is chosen whenever every observed
// magnitude fits its finite range; fractional values may lose precision, as
// float32 carries a 24-bit significand. When disabled, float sequences pack
// as float64 directly and the values round-trip bit-exactly.
//
// Integer sequences are unaffected: an integer sequence packs as float32
// only when the type bounds exclude every integer candidate.
func WithFloatDowngrade(allow bool) Option {
	return options.NoError(func(c *Config) {
		c.allowFloatDowngrade = allow
	})
}

// WithSampleSize limits range scanning to the first size elements.
//
// Packing still consumes the whole sequence; a value beyond the sampled
// window that violates the chosen type surfaces as a packing error rather
// than silently widening the type. Zero (the default) scans everything.
//
// Parameters:
//   - size: Number of leading elements to inspect, or 0 for all
//
// Returns an option that fails validation for negative sizes.
func WithSampleSize(size int) Option {
	return options.New(func(c *Config) error {
		return c.setSampleSize(size)
	})
}

// WithChunkSize sets the number of elements per window for Stream.
//
// Zero selects DefaultChunkSize; negative sizes fail validation. Entry
// points that do not window (Select, Encode, Analyze) ignore this setting.
func WithChunkSize(size int) Option {
	return options.New(func(c *Config) error {
		return c.setChunkSize(size)
	})
}

// WithLittleEndian makes packed buffers use little-endian byte order.
//
// Little-endian is the default and matches the native order of most modern
// platforms, which keeps the zero-copy typed views available.
func WithLittleEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian makes packed buffers use big-endian byte order.
//
// Use this when producing buffers for big-endian consumers. On little-endian
// hosts the typed zero-copy views are unavailable for such buffers; element
// access goes through the safe decoder instead.
func WithBigEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetBigEndianEngine()
	})
}
