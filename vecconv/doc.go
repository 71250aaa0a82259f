// Package vecconv bridges packing results and gonum vectors.
//
// Results decode to []float64 or *mat.VecDense for numeric work, vectors
// pack back through the regular selection pipeline, and Summarize reports
// descriptive statistics without leaving the packed representation longer
// than needed:
//
//	res, _ := pack.Select(values)
//	vec, err := vecconv.ToVector(res)
//	if err != nil {
//	    return err
//	}
//	stats, _ := vecconv.Summarize(res)
//	fmt.Println(stats)
//
// Conversion is range-preserving but not precision-preserving: integers
// beyond 2^53 round the way float64 rounds them.
package vecconv
