/*
Package backend provides an abstraction layer over the computational primitives used by
the vector package, currently implemented:

	- blas (gonum blas32 / blas64, the default)
	- naive (explicit strided loops, no optimizations)

The strategy is chosen statically per element width: For[float32]() and For[float64]()
return the process default for that width. Operations mixing the two widths have no
backend counterpart and always run through the loops in mixed.go.
*/
package backend
