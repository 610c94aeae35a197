/*
Package vector implements dense strided vectors of float32 or float64 elements.

A View is a window over a buffer owned by someone else, element i living at
Data()[i*Stride()], so rows, columns and diagonals of a matrix can be used as vectors
without copying. A Vector owns a contiguous buffer allocated through the backend
package and can be resized.

Primitive operations run on the strategy returned by backend.For, operations between
the two element widths are the generic functions ending in Of.

Precondition violations (dimension mismatch, operand aliasing the destination,
index out of range) panic with a *Error wrapping one of the sentinel errors of this
package, numerical domain errors and stream errors are returned.
*/
package vector
