package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromDense returns a General sharing the storage of d.
func FromDense(d *mat.Dense) *General[float64] {
	raw := d.RawMatrix()
	return &General[float64]{
		Rows:   raw.Rows,
		Cols:   raw.Cols,
		Stride: raw.Stride,
		Data:   raw.Data,
	}
}

// ToDense returns a copy of m as a gonum matrix.
func ToDense(m *General[float64]) *mat.Dense {
	d := mat.NewDense(m.Rows, m.Cols, nil)
	for i := 0; i < m.Rows; i++ {
		d.SetRow(i, m.RowData(i))
	}
	return d
}

// FromSymDense packs the lower triangle of s.
func FromSymDense(s *mat.SymDense) *Sp[float64] {
	n := s.SymmetricDim()
	sp := NewSp[float64](n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sp.Data[sp.Index(i, j)] = s.At(i, j)
		}
	}
	return sp
}

// FromTriDense packs a lower triangular gonum matrix.
func FromTriDense(t *mat.TriDense) (*Tp[float64], error) {
	n, kind := t.Triangle()
	if kind != mat.Lower {
		return nil, fmt.Errorf("matrix: only lower triangular matrices can be packed")
	}
	tp := NewTp[float64](n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			tp.Data[tp.Index(i, j)] = t.At(i, j)
		}
	}
	return tp, nil
}
