package report

// Rolling computes a trailing mean over the given window. Partial windows
// at the head of the series average whatever points exist so far, so the
// output always has the same length as the input.
func Rolling(values []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}
	out := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		n := i + 1
		if n > window {
			n = window
		}
		out[i] = sum / float64(n)
	}
	return out
}
