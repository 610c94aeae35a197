package backend

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
)

type blasFloat32 struct {
}

func (impl blasFloat32) Name() string {
	return "blas32"
}

func (impl blasFloat32) Dot(n int, x []float32, incX int, y []float32, incY int) float32 {
	return blas32.Implementation().Sdot(n, x, incX, y, incY)
}

func (impl blasFloat32) Axpy(n int, alpha float32, x []float32, incX int, y []float32, incY int) {
	blas32.Implementation().Saxpy(n, alpha, x, incX, y, incY)
}

func (impl blasFloat32) Scal(n int, alpha float32, x []float32, incX int) {
	blas32.Implementation().Sscal(n, alpha, x, incX)
}

func (impl blasFloat32) Copy(n int, x []float32, incX int, y []float32, incY int) {
	blas32.Implementation().Scopy(n, x, incX, y, incY)
}

func (impl blasFloat32) Gemv(t Transpose, m, n int, alpha float32, a []float32, lda int, x []float32, incX int, beta float32, y []float32, incY int) {
	blas32.Implementation().Sgemv(t, m, n, alpha, a, lda, x, incX, beta, y, incY)
}

func (impl blasFloat32) Gbmv(t Transpose, m, n, kl, ku int, alpha float32, a []float32, lda int, x []float32, incX int, beta float32, y []float32, incY int) {
	blas32.Implementation().Sgbmv(t, m, n, kl, ku, alpha, a, lda, x, incX, beta, y, incY)
}

func (impl blasFloat32) Spmv(n int, alpha float32, ap []float32, x []float32, incX int, beta float32, y []float32, incY int) {
	blas32.Implementation().Sspmv(blas.Lower, n, alpha, ap, x, incX, beta, y, incY)
}

func (impl blasFloat32) Tpmv(t Transpose, n int, ap []float32, x []float32, incX int) {
	blas32.Implementation().Stpmv(blas.Lower, t, blas.NonUnit, n, ap, x, incX)
}

func (impl blasFloat32) Tpsv(t Transpose, n int, ap []float32, x []float32, incX int) {
	blas32.Implementation().Stpsv(blas.Lower, t, blas.NonUnit, n, ap, x, incX)
}

type blasFloat64 struct {
}

func (impl blasFloat64) Name() string {
	return "blas64"
}

func (impl blasFloat64) Dot(n int, x []float64, incX int, y []float64, incY int) float64 {
	return blas64.Implementation().Ddot(n, x, incX, y, incY)
}

func (impl blasFloat64) Axpy(n int, alpha float64, x []float64, incX int, y []float64, incY int) {
	blas64.Implementation().Daxpy(n, alpha, x, incX, y, incY)
}

func (impl blasFloat64) Scal(n int, alpha float64, x []float64, incX int) {
	blas64.Implementation().Dscal(n, alpha, x, incX)
}

func (impl blasFloat64) Copy(n int, x []float64, incX int, y []float64, incY int) {
	blas64.Implementation().Dcopy(n, x, incX, y, incY)
}

func (impl blasFloat64) Gemv(t Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
	blas64.Implementation().Dgemv(t, m, n, alpha, a, lda, x, incX, beta, y, incY)
}

func (impl blasFloat64) Gbmv(t Transpose, m, n, kl, ku int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
	blas64.Implementation().Dgbmv(t, m, n, kl, ku, alpha, a, lda, x, incX, beta, y, incY)
}

func (impl blasFloat64) Spmv(n int, alpha float64, ap []float64, x []float64, incX int, beta float64, y []float64, incY int) {
	blas64.Implementation().Dspmv(blas.Lower, n, alpha, ap, x, incX, beta, y, incY)
}

func (impl blasFloat64) Tpmv(t Transpose, n int, ap []float64, x []float64, incX int) {
	blas64.Implementation().Dtpmv(blas.Lower, t, blas.NonUnit, n, ap, x, incX)
}

func (impl blasFloat64) Tpsv(t Transpose, n int, ap []float64, x []float64, incX int) {
	blas64.Implementation().Dtpsv(blas.Lower, t, blas.NonUnit, n, ap, x, incX)
}
