package result

import "github.com/zeebo/errs"

// Values returns the values of the Ok results, dropping the failed ones.
// It returns nil when no result is Ok.
func Values[T any](rs []Result[T]) []T {
	var vals []T
	for _, r := range rs {
		if r.err == nil {
			vals = append(vals, r.value)
		}
	}
	return vals
}

// Partition splits rs into values and errors, keeping their relative order.
// Either slice is nil when it would be empty.
func Partition[T any](rs []Result[T]) ([]T, []error) {
	var (
		vals  []T
		fails []error
	)
	for _, r := range rs {
		if r.err != nil {
			fails = append(fails, r.err)
			continue
		}
		vals = append(vals, r.value)
	}
	return vals, fails
}

// Collect returns every value if all results are Ok. Otherwise it returns
// nil and the errors of the failed results joined by errs.Combine.
//
// The combined error unwraps to the first failure only, so errors.Is does
// not see the later ones. Use Partition to inspect every failure.
func Collect[T any](rs []Result[T]) ([]T, error) {
	vals, fails := Partition(rs)
	if len(fails) > 0 {
		return nil, errs.Combine(fails...)
	}
	return vals, nil
}
