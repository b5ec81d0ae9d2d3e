/*
Package dense implements generic dense vectors and matrices.

Elements can be of any type that knows how to add, subtract, and multiply
itself, see [Scalar].
Operands of element arithmetic are passed as any, so scalars of a different
type, such as a raw int multiplier, reach the element's own conversion rules
instead of being rejected by the container.

# Representation

A [Vector] is an ordered sequence of elements.
A [Matrix] is a rectangular grid stored in row-major order.
Both are values: every operation returns a new container and never modifies
its operands.

# Errors

Operations on containers of incompatible sizes return [ErrDimensionMismatch].
Building a matrix from rows of unequal length returns [ErrIrregularShape].
Element errors are returned wrapped with the position of the element.
Indexing outside of a container panics, like indexing a slice.
*/
package dense
