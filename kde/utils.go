package kde

// InitOnes returns n ones, the heights of an unweighted distribution.
func InitOnes(n int) []float64 {
	res := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, 1)
	}
	return res
}
