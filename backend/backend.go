package backend

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
)

// Float is the set of element types a strategy can be instantiated for.
type Float interface {
	float32 | float64
}

// Transpose selects op(A) = A or op(A) = Aᵗ in the matrix-vector primitives.
type Transpose = blas.Transpose

const (
	NoTrans = blas.NoTrans
	Trans   = blas.Trans
)

// Implementation is the set of primitives every strategy must provide. All of them
// follow the BLAS conventions: row-major matrices, an explicit element increment on
// every vector operand (never zero), packed matrices storing their lower triangle
// row by row.
type Implementation[T Float] interface {
	Name() string

	// Dot returns Σ x[i*incX]*y[i*incY].
	Dot(n int, x []T, incX int, y []T, incY int) T
	// Axpy computes y += alpha*x.
	Axpy(n int, alpha T, x []T, incX int, y []T, incY int)
	// Scal computes x *= alpha.
	Scal(n int, alpha T, x []T, incX int)
	// Copy copies x into y.
	Copy(n int, x []T, incX int, y []T, incY int)
	// Gemv computes y = alpha*op(A)*x + beta*y for an m×n matrix A.
	Gemv(t Transpose, m, n int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T, incY int)
	// Gbmv computes y = alpha*op(A)*x + beta*y for an m×n band matrix A with kl
	// sub-diagonals and ku super-diagonals.
	Gbmv(t Transpose, m, n, kl, ku int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T, incY int)
	// Spmv computes y = alpha*A*x + beta*y for a packed symmetric A.
	Spmv(n int, alpha T, ap []T, x []T, incX int, beta T, y []T, incY int)
	// Tpmv computes x = op(A)*x for a packed lower triangular A.
	Tpmv(t Transpose, n int, ap []T, x []T, incX int)
	// Tpsv solves op(A)*x = b for a packed lower triangular A, b being passed in x.
	// A singular A yields an undefined result.
	Tpsv(t Transpose, n int, ap []T, x []T, incX int)
}

var impl = "blas"

// Name returns the name of the strategy currently in use.
func Name() string {
	return impl
}

// Select changes the process default strategy. It is not synchronized and is meant
// to be called once at startup.
func Select(name string) error {
	switch name {
	case "blas", "naive":
		impl = name
		return nil
	}
	return fmt.Errorf("unknown backend '%s', valid options are 'blas' and 'naive'", name)
}

// For returns the default strategy for the element width T.
func For[T Float]() Implementation[T] {
	if impl == "naive" {
		return Naive[T]()
	}
	return Accelerated[T]()
}

// Accelerated returns the gonum backed strategy for the element width T.
func Accelerated[T Float]() Implementation[T] {
	var accel any
	switch any(*new(T)).(type) {
	case float32:
		accel = blasFloat32{}
	case float64:
		accel = blasFloat64{}
	}
	return accel.(Implementation[T])
}

// Naive returns the portable strategy for the element width T.
func Naive[T Float]() Implementation[T] {
	return naive[T]{}
}
