package vector

import (
	"github.com/evilsocket/vek/backend"
	"github.com/evilsocket/vek/matrix"
)

func (v *View[T]) checkAlias(op string, others ...*View[T]) {
	for _, o := range others {
		if sameData(v, o) {
			fail(op, ErrAlias, "operand shares the destination buffer")
		}
	}
}

// scaleOrClear computes v = beta*v, clearing it when beta is zero so that NaNs in
// the previous content do not survive.
func (v *View[T]) scaleOrClear(beta T) {
	switch beta {
	case 1:
	case 0:
		v.SetZero()
	default:
		v.Scale(beta)
	}
}

// AddVec computes v += alpha*x. x must not share the buffer of v.
func (v *View[T]) AddVec(alpha T, x Viewer[T]) {
	o := x.AsView()
	checkDim("AddVec", v.dim, o.dim)
	v.checkAlias("AddVec", o)
	if v.dim == 0 {
		return
	}
	backend.For[T]().Axpy(v.dim, alpha, o.data, o.stride, v.data, v.stride)
}

// AddVec2 computes v += alpha*x∘x.
func (v *View[T]) AddVec2(alpha T, x Viewer[T]) {
	o := x.AsView()
	checkDim("AddVec2", v.dim, o.dim)
	for i := 0; i < v.dim; i++ {
		e := o.data[i*o.stride]
		v.data[i*v.stride] += alpha * e * e
	}
}

// AddVecVec computes v = beta*v + alpha*x∘y, as a diagonal band matrix-vector
// product. Neither x nor y may share the buffer of v.
func (v *View[T]) AddVecVec(alpha T, x, y Viewer[T], beta T) {
	a, b := x.AsView(), y.AsView()
	checkDim("AddVecVec", v.dim, a.dim)
	checkDim("AddVecVec", v.dim, b.dim)
	v.checkAlias("AddVecVec", a, b)
	if v.dim == 0 {
		return
	}
	backend.For[T]().Gbmv(backend.NoTrans, v.dim, v.dim, 0, 0, alpha, a.data, a.stride, b.data, b.stride, beta, v.data, v.stride)
}

// AddVecDivVec computes v = beta*v + alpha*x/y elementwise.
func (v *View[T]) AddVecDivVec(alpha T, x, y Viewer[T], beta T) {
	a, b := x.AsView(), y.AsView()
	checkDim("AddVecDivVec", v.dim, a.dim)
	checkDim("AddVecDivVec", v.dim, b.dim)
	for i := 0; i < v.dim; i++ {
		q := alpha * a.data[i*a.stride] / b.data[i*b.stride]
		if beta == 0 {
			v.data[i*v.stride] = q
		} else {
			v.data[i*v.stride] = beta*v.data[i*v.stride] + q
		}
	}
}

func checkMatVec[T Float](op string, m *matrix.General[T], trans backend.Transpose, dim, vdim int) {
	rows, cols := m.Rows, m.Cols
	if trans == backend.Trans {
		rows, cols = cols, rows
	}
	if rows != dim || cols != vdim {
		fail(op, ErrShape, "%c(%dx%d) applied to %d elements into %d", trans, m.Rows, m.Cols, vdim, dim)
	}
}

// AddMatVec computes v = beta*v + alpha*op(M)*x. x must not share the buffer of v.
func (v *View[T]) AddMatVec(alpha T, m *matrix.General[T], trans backend.Transpose, x Viewer[T], beta T) {
	o := x.AsView()
	checkMatVec("AddMatVec", m, trans, v.dim, o.dim)
	v.checkAlias("AddMatVec", o)
	if m.Rows == 0 || m.Cols == 0 {
		v.scaleOrClear(beta)
		return
	}
	backend.For[T]().Gemv(trans, m.Rows, m.Cols, alpha, m.Data, m.Stride, o.data, o.stride, beta, v.data, v.stride)
}

// AddMatSvec has the same contract as AddMatVec but skips the zero elements of x,
// it is faster when x is mostly zero.
func (v *View[T]) AddMatSvec(alpha T, m *matrix.General[T], trans backend.Transpose, x Viewer[T], beta T) {
	o := x.AsView()
	checkMatVec("AddMatSvec", m, trans, v.dim, o.dim)
	v.checkAlias("AddMatSvec", o)
	v.scaleOrClear(beta)
	if m.Rows == 0 || m.Cols == 0 {
		return
	}

	impl := backend.For[T]()
	for i := 0; i < o.dim; i++ {
		xi := o.data[i*o.stride]
		if xi == 0 {
			continue
		}
		if trans == backend.NoTrans {
			// column i of M
			impl.Axpy(m.Rows, alpha*xi, m.Data[i:], m.Stride, v.data, v.stride)
		} else {
			impl.Axpy(m.Cols, alpha*xi, m.RowData(i), 1, v.data, v.stride)
		}
	}
}

// AddSpVec computes v = beta*v + alpha*M*x for a packed symmetric M.
func (v *View[T]) AddSpVec(alpha T, m *matrix.Sp[T], x Viewer[T], beta T) {
	o := x.AsView()
	if m.N != o.dim || v.dim != o.dim {
		fail("AddSpVec", ErrShape, "(%dx%d) applied to %d elements into %d", m.N, m.N, o.dim, v.dim)
	}
	v.checkAlias("AddSpVec", o)
	if v.dim == 0 {
		return
	}
	backend.For[T]().Spmv(m.N, alpha, m.Data, o.data, o.stride, beta, v.data, v.stride)
}

// MulTp computes v = op(M)*v for a packed lower triangular M.
func (v *View[T]) MulTp(m *matrix.Tp[T], trans backend.Transpose) {
	checkDim("MulTp", m.N, v.dim)
	if v.dim == 0 {
		return
	}
	backend.For[T]().Tpmv(trans, m.N, m.Data, v.data, v.stride)
}

// Solve overwrites v with the solution x of op(M)*x = v. M is assumed non singular,
// the result is undefined otherwise.
func (v *View[T]) Solve(m *matrix.Tp[T], trans backend.Transpose) {
	checkDim("Solve", m.N, v.dim)
	if v.dim == 0 {
		return
	}
	backend.For[T]().Tpsv(trans, m.N, m.Data, v.data, v.stride)
}

// AddTpVec computes v = beta*v + alpha*op(M)*x for a packed lower triangular M.
func (v *View[T]) AddTpVec(alpha T, m *matrix.Tp[T], trans backend.Transpose, x Viewer[T], beta T) {
	o := x.AsView()
	if v.dim != o.dim || v.dim != m.N {
		fail("AddTpVec", ErrShape, "(%dx%d) applied to %d elements into %d", m.N, m.N, o.dim, v.dim)
	}
	if beta == 0 {
		v.CopyFromVec(o)
		v.MulTp(m, trans)
		if alpha != 1 {
			v.Scale(alpha)
		}
		return
	}
	tmp := Clone[T](o)
	tmp.MulTp(m, trans)
	if beta != 1 {
		v.Scale(beta)
	}
	v.AddVec(alpha, tmp)
}

// AddRowSumMat computes v = beta*v + alpha*Σ rows of M.
func (v *View[T]) AddRowSumMat(alpha T, m *matrix.General[T], beta T) {
	checkDim("AddRowSumMat", m.Cols, v.dim)
	if m.Rows == 0 || m.Cols == 0 {
		v.scaleOrClear(beta)
		return
	}
	impl := backend.For[T]()
	one := ones[T]()
	for off := 0; off < m.Rows; off += chunk {
		n := min(chunk, m.Rows-off)
		impl.Gemv(backend.Trans, n, m.Cols, alpha, m.Data[off*m.Stride:], m.Stride, one, 1, beta, v.data, v.stride)
		beta = 1
	}
}

// AddColSumMat computes v = beta*v + alpha*Σ columns of M.
func (v *View[T]) AddColSumMat(alpha T, m *matrix.General[T], beta T) {
	checkDim("AddColSumMat", m.Rows, v.dim)
	if m.Rows == 0 || m.Cols == 0 {
		v.scaleOrClear(beta)
		return
	}
	impl := backend.For[T]()
	one := ones[T]()
	for off := 0; off < m.Cols; off += chunk {
		n := min(chunk, m.Cols-off)
		impl.Gemv(backend.NoTrans, m.Rows, n, alpha, m.Data[off:], m.Stride, one, 1, beta, v.data, v.stride)
		beta = 1
	}
}

// AddDiagMat2 computes v = beta*v + alpha*diag(M·Mᵗ), or diag(Mᵗ·M) when trans is
// Trans.
func (v *View[T]) AddDiagMat2(alpha T, m *matrix.General[T], trans backend.Transpose, beta T) {
	// the i-th output is the squared norm of row i (or column i)
	n, inc, step := m.Cols, 1, m.Stride
	if trans == backend.Trans {
		n, inc, step = m.Rows, m.Stride, 1
		checkDim("AddDiagMat2", m.Cols, v.dim)
	} else {
		checkDim("AddDiagMat2", m.Rows, v.dim)
	}
	impl := backend.For[T]()
	for i := 0; i < v.dim; i++ {
		dot := T(0)
		if n > 0 {
			x := m.Data[i*step:]
			dot = impl.Dot(n, x, inc, x, inc)
		}
		v.setScaled(i, beta, alpha*dot)
	}
}

// AddDiagMatMat computes v = beta*v + alpha*diag(op(M)·op(N)).
func (v *View[T]) AddDiagMatMat(alpha T, m *matrix.General[T], transM backend.Transpose, n *matrix.General[T], transN backend.Transpose, beta T) {
	mRows, mCols := m.Rows, m.Cols
	mRowStride, mColStride := m.Stride, 1
	if transM == backend.Trans {
		mRows, mCols = mCols, mRows
		mRowStride, mColStride = mColStride, mRowStride
	}
	nRows, nCols := n.Rows, n.Cols
	nRowStride, nColStride := n.Stride, 1
	if transN == backend.Trans {
		nRows, nCols = nCols, nRows
		nRowStride, nColStride = nColStride, nRowStride
	}
	if mCols != nRows || mRows != v.dim || nCols != v.dim {
		fail("AddDiagMatMat", ErrShape, "diag of (%dx%d)·(%dx%d) into %d", mRows, mCols, nRows, nCols, v.dim)
	}
	impl := backend.For[T]()
	for i := 0; i < v.dim; i++ {
		dot := T(0)
		if mCols > 0 {
			dot = impl.Dot(mCols, m.Data[i*mRowStride:], mColStride, n.Data[i*nColStride:], nRowStride)
		}
		v.setScaled(i, beta, alpha*dot)
	}
}

func (v *View[T]) setScaled(i int, beta, x T) {
	p := &v.data[i*v.stride]
	if beta == 0 {
		*p = x
	} else {
		*p = beta**p + x
	}
}
