package backend

type naive[T Float] struct {
}

func (impl naive[T]) Name() string {
	return "naive"
}

func (impl naive[T]) Dot(n int, x []T, incX int, y []T, incY int) T {
	dot := T(0)
	for i := 0; i < n; i++ {
		dot += x[i*incX] * y[i*incY]
	}
	return dot
}

func (impl naive[T]) Axpy(n int, alpha T, x []T, incX int, y []T, incY int) {
	if alpha == 0 {
		return
	}
	for i := 0; i < n; i++ {
		y[i*incY] += alpha * x[i*incX]
	}
}

func (impl naive[T]) Scal(n int, alpha T, x []T, incX int) {
	if alpha == 0 {
		for i := 0; i < n; i++ {
			x[i*incX] = 0
		}
		return
	}
	for i := 0; i < n; i++ {
		x[i*incX] *= alpha
	}
}

func (impl naive[T]) Copy(n int, x []T, incX int, y []T, incY int) {
	if incX == 1 && incY == 1 {
		copy(y[:n], x[:n])
		return
	}
	for i := 0; i < n; i++ {
		y[i*incY] = x[i*incX]
	}
}

func (impl naive[T]) Gemv(t Transpose, m, n int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T, incY int) {
	if m == 0 || n == 0 || (alpha == 0 && beta == 1) {
		return
	}

	lenY := m
	if t != NoTrans {
		lenY = n
	}
	if beta != 1 {
		impl.Scal(lenY, beta, y, incY)
	}
	if alpha == 0 {
		return
	}

	if t == NoTrans {
		for i := 0; i < m; i++ {
			row := a[i*lda:]
			sum := T(0)
			for j := 0; j < n; j++ {
				sum += row[j] * x[j*incX]
			}
			y[i*incY] += alpha * sum
		}
		return
	}

	for i := 0; i < m; i++ {
		row := a[i*lda:]
		tmp := alpha * x[i*incX]
		if tmp == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			y[j*incY] += tmp * row[j]
		}
	}
}

func (impl naive[T]) Gbmv(t Transpose, m, n, kl, ku int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T, incY int) {
	if m == 0 || n == 0 || (alpha == 0 && beta == 1) {
		return
	}

	lenY := m
	if t != NoTrans {
		lenY = n
	}
	if beta != 1 {
		impl.Scal(lenY, beta, y, incY)
	}
	if alpha == 0 {
		return
	}

	for i := 0; i < m; i++ {
		lo := i - kl
		if lo < 0 {
			lo = 0
		}
		hi := i + ku + 1
		if hi > n {
			hi = n
		}
		row := a[i*lda:]
		if t == NoTrans {
			sum := T(0)
			for j := lo; j < hi; j++ {
				sum += row[j-i+kl] * x[j*incX]
			}
			y[i*incY] += alpha * sum
		} else {
			tmp := alpha * x[i*incX]
			for j := lo; j < hi; j++ {
				y[j*incY] += tmp * row[j-i+kl]
			}
		}
	}
}

func (impl naive[T]) Spmv(n int, alpha T, ap []T, x []T, incX int, beta T, y []T, incY int) {
	if n == 0 || (alpha == 0 && beta == 1) {
		return
	}
	if beta != 1 {
		impl.Scal(n, beta, y, incY)
	}
	if alpha == 0 {
		return
	}

	for i := 0; i < n; i++ {
		row := ap[i*(i+1)/2:]
		xi := x[i*incX]
		sum := T(0)
		for j := 0; j < i; j++ {
			sum += row[j] * x[j*incX]
			y[j*incY] += alpha * row[j] * xi
		}
		sum += row[i] * xi
		y[i*incY] += alpha * sum
	}
}

func (impl naive[T]) Tpmv(t Transpose, n int, ap []T, x []T, incX int) {
	if t == NoTrans {
		// rows are consumed bottom up so x[j], j <= i, still holds the input.
		for i := n - 1; i >= 0; i-- {
			row := ap[i*(i+1)/2:]
			sum := T(0)
			for j := 0; j <= i; j++ {
				sum += row[j] * x[j*incX]
			}
			x[i*incX] = sum
		}
		return
	}

	for j := 0; j < n; j++ {
		sum := T(0)
		for i := j; i < n; i++ {
			sum += ap[i*(i+1)/2+j] * x[i*incX]
		}
		x[j*incX] = sum
	}
}

func (impl naive[T]) Tpsv(t Transpose, n int, ap []T, x []T, incX int) {
	if t == NoTrans {
		for i := 0; i < n; i++ {
			row := ap[i*(i+1)/2:]
			sum := x[i*incX]
			for j := 0; j < i; j++ {
				sum -= row[j] * x[j*incX]
			}
			x[i*incX] = sum / row[i]
		}
		return
	}

	for j := n - 1; j >= 0; j-- {
		sum := x[j*incX]
		for i := j + 1; i < n; i++ {
			sum -= ap[i*(i+1)/2+j] * x[i*incX]
		}
		x[j*incX] = sum / ap[j*(j+1)/2+j]
	}
}
