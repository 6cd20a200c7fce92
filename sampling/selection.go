package sampling

// selectWeighted performs a single weighted-random selection over a
// discrete probability distribution: it scans probabilities in order
// accumulating a running sum, and returns the first index at which u
// falls under the running sum. It returns -1 if u is not below the total
// of probabilities, including when probabilities is empty; ChaoSampler
// relies on that result to fall back to evicting a feasible slot.
func selectWeighted(probabilities []float64, u float64) int {
	sum := 0.0
	for i, p := range probabilities {
		sum += p
		if u < sum {
			return i
		}
	}
	return -1
}
