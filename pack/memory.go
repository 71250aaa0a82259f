package pack

import (
	"fmt"
	"unsafe"

	"github.com/arloliu/numpack/format"
	"github.com/arloliu/numpack/scalar"
)

// naiveValueSize is the per-element footprint of the boxed representation
// callers hold before packing.
const naiveValueSize = int(unsafe.Sizeof(scalar.Value{}))

// MemoryReport compares the memory footprint of a sequence held as boxed
// scalar values against its packed form.
type MemoryReport struct {
	// NaiveBytes is the footprint of count boxed values.
	NaiveBytes int

	// PackedBytes is the packed payload size, or NaiveBytes when the
	// sequence fell back.
	PackedBytes int

	// SavedBytes is NaiveBytes - PackedBytes; zero for fallbacks.
	SavedBytes int

	// Ratio is PackedBytes / NaiveBytes; 1.0 for fallbacks and empty input.
	Ratio float64

	// TypeCode is the chosen element type, or format.TypeInvalid when the
	// sequence fell back.
	TypeCode format.TypeCode

	// Count is the number of elements.
	Count int
}

// SavingsPercent returns the saved fraction as a percentage.
func (r MemoryReport) SavingsPercent() float64 {
	return (1 - r.Ratio) * 100
}

func (r MemoryReport) String() string {
	if r.TypeCode == format.TypeInvalid {
		return fmt.Sprintf("naive %d bytes, no packed form", r.NaiveBytes)
	}

	return fmt.Sprintf("naive %d bytes, packed(%s) %d bytes, saved %d bytes (%.1f%%)",
		r.NaiveBytes, r.TypeCode, r.PackedBytes, r.SavedBytes, r.SavingsPercent())
}

// ReportMemory packs values through Select and reports the footprint of
// the result against the boxed representation.
//
// The report is built from a real selection, so it reflects exactly what
// Select with the same options would produce, including fallbacks. Errors
// propagate from Select unchanged.
func ReportMemory(values []scalar.Value, opts ...Option) (MemoryReport, error) {
	res, err := Select(values, opts...)
	if err != nil {
		return MemoryReport{}, err
	}

	report := MemoryReport{
		NaiveBytes: len(values) * naiveValueSize,
		Count:      len(values),
		Ratio:      1,
	}

	if pb, ok := res.AsPacked(); ok {
		report.PackedBytes = pb.Size()
		report.SavedBytes = report.NaiveBytes - report.PackedBytes
		report.TypeCode = pb.TypeCode()
	} else {
		report.PackedBytes = report.NaiveBytes
	}

	if report.NaiveBytes > 0 {
		report.Ratio = float64(report.PackedBytes) / float64(report.NaiveBytes)
	}

	return report, nil
}
