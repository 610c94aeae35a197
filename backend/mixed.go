package backend

// Operations between two different element widths have no BLAS counterpart, these
// loops implement them with the accumulation happening in the destination width.

// DotMixed returns Σ x[i*incX]*y[i*incY] accumulated in T.
func DotMixed[T, U Float](n int, x []T, incX int, y []U, incY int) T {
	dot := T(0)
	for i := 0; i < n; i++ {
		dot += x[i*incX] * T(y[i*incY])
	}
	return dot
}

// AxpyMixed computes y += alpha*x where x has a different width than y.
func AxpyMixed[T, U Float](n int, alpha T, x []U, incX int, y []T, incY int) {
	if alpha == 1 {
		for i := 0; i < n; i++ {
			y[i*incY] += T(x[i*incX])
		}
		return
	}
	for i := 0; i < n; i++ {
		y[i*incY] += alpha * T(x[i*incX])
	}
}

// CopyMixed copies x into y converting every element to T.
func CopyMixed[T, U Float](n int, x []U, incX int, y []T, incY int) {
	for i := 0; i < n; i++ {
		y[i*incY] = T(x[i*incX])
	}
}
