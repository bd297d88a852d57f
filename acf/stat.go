package acf

// Mean returns the arithmetic mean of series, or 0 for an empty slice.
//
// Complexity: O(n) time, O(1) memory.
func Mean(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}

	var sum float64
	for _, v := range series {
		sum += v
	}

	return sum / float64(len(series))
}

// Variance returns the population variance of series (mean squared
// deviation, divisor n), the same normalization the approximate
// estimator uses in its denominator. Returns 0 for an empty slice.
//
// Complexity: O(n) time, O(1) memory.
func Variance(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}

	mu := Mean(series)

	var sumSq float64
	for _, v := range series {
		d := v - mu
		sumSq += d * d
	}

	return sumSq / float64(len(series))
}
