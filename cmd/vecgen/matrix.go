// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"strings"
)

// shape is one fixed matrix shape, R rows by C columns.
type shape struct{ R, C int }

func (s shape) name() string { return fmt.Sprintf("Mat%dx%d", s.R, s.C) }

func (s shape) square() bool { return s.R == s.C }

// emitMatrix writes the fixed-shape matrix types Mat1x1..Mat{n}x{n}.
func emitMatrix(buf *bytes.Buffer, maxSide int) error {
	if maxSide < 1 || maxSide > len(axes) {
		return fmt.Errorf("maxside %d: want 1..%d", maxSide, len(axes))
	}
	header(buf, "matrix", scalarImport, vectorImport, gonumImport)
	for r := 1; r <= maxSide; r++ {
		for c := 1; c <= maxSide; c++ {
			emitShape(buf, shape{r, c}, maxSide)
		}
	}
	for n := 1; n <= maxSide; n++ {
		emitIdentity(buf, n)
	}
	return nil
}

func emitShape(buf *bytes.Buffer, s shape, maxSide int) {
	name := s.name()
	p := func(format string, args ...any) { fmt.Fprintf(buf, format, args...) }

	p("\n// %s is a %d×%d matrix stored row-major: m[i] is row i.\n", name, s.R, s.C)
	p("type %s[T scalar.Element] [%d][%d]T\n", name, s.R, s.C)
	p("\nvar _ Matrix[float64] = %s[float64]{}\n", name)

	p("\n// New%s returns the matrix with the given rows.\n", name)
	p("func New%s[T scalar.Element](rows [%d][%d]T) %s[T] { return %s[T](rows) }\n", name, s.R, s.C, name, name)

	rows := make([]string, s.R)
	arrays := make([]string, s.R)
	for i := range rows {
		rows[i] = fmt.Sprintf("r%d", i)
		arrays[i] = fmt.Sprintf("r%d.Array()", i)
	}
	p("\n// %sFromRows returns the matrix whose rows are %s.\n", name, strings.Join(rows, ", "))
	p("func %sFromRows[T scalar.Element](%s vector.Vec%d[T]) %s[T] {\n", name, strings.Join(rows, ", "), s.C, name)
	p("\treturn %s[T]{%s}\n}\n", name, strings.Join(arrays, ", "))

	p("\n// %sOne returns the matrix with every element 1.\n", name)
	p("func %sOne[T scalar.Element]() %s[T] {\n", name, name)
	p("\tvar m %s[T]\n\tfor i := range m {\n\t\tm[i] = vector.SplatArray[T, [%d]T](1)\n\t}\n\treturn m\n}\n", name, s.C)

	p("\n// %sFromDense copies a %d×%d gonum matrix, converting each element to T.\n", name, s.R, s.C)
	p("func %sFromDense[T scalar.Element](d mat.Matrix) (%s[T], error) {\n", name, name)
	p("\tvar m %s[T]\n\terr := fromDense[T](d, m[:])\n\treturn m, err\n}\n", name)

	p("\n// Rows returns %d.\n", s.R)
	p("func (m %s[T]) Rows() int { return %d }\n", name, s.R)
	p("\n// Cols returns %d.\n", s.C)
	p("func (m %s[T]) Cols() int { return %d }\n", name, s.C)

	p("\n// At returns the element at row r, column c. It panics if either is out of range.\n")
	p("func (m %s[T]) At(r, c int) T {\n\tcheckIndex(r, c, %d, %d)\n\treturn m[r][c]\n}\n", name, s.R, s.C)
	p("\n// Set replaces the element at row r, column c. It panics if either is out of range.\n")
	p("func (m *%s[T]) Set(r, c int, x T) {\n\tcheckIndex(r, c, %d, %d)\n\t(*m)[r][c] = x\n}\n", name, s.R, s.C)

	p("\n// Row returns row i. It panics if i is out of range.\n")
	p("func (m %s[T]) Row(i int) [%d]T {\n\tcheckIndex(i, 0, %d, %d)\n\treturn m[i]\n}\n", name, s.C, s.R, s.C)
	p("\n// Col returns column j. It panics if j is out of range.\n")
	p("func (m %s[T]) Col(j int) [%d]T {\n\tcheckIndex(0, j, %d, %d)\n", name, s.R, s.R, s.C)
	p("\tvar col [%d]T\n\tfor i := range m {\n\t\tcol[i] = m[i][j]\n\t}\n\treturn col\n}\n", s.R)
	p("\n// RowVec returns row i as a vector.\n")
	p("func (m %s[T]) RowVec(i int) vector.Vec%d[T] { return vector.Vec%dFromArray(m.Row(i)) }\n", name, s.C, s.C)
	p("\n// ColVec returns column j as a vector.\n")
	p("func (m %s[T]) ColVec(j int) vector.Vec%d[T] { return vector.Vec%dFromArray(m.Col(j)) }\n", name, s.R, s.R)

	for _, op := range []struct{ method, kernel, doc string }{
		{"Add", "AddArray", "m + b"},
		{"Sub", "SubArray", "m - b"},
	} {
		p("\n// %s returns %s.\n", op.method, op.doc)
		p("func (m %s[T]) %s(b %s[T]) %s[T] {\n", name, op.method, name, name)
		p("\tfor i := range m {\n\t\tm[i] = vector.%s[T](m[i], b[i])\n\t}\n\treturn m\n}\n", op.kernel)
	}
	p("\n// Neg returns -m.\n")
	p("func (m %s[T]) Neg() %s[T] {\n", name, name)
	p("\tfor i := range m {\n\t\tm[i] = vector.NegArray[T](m[i])\n\t}\n\treturn m\n}\n")
	for _, op := range []struct{ method, kernel, doc string }{
		{"Scale", "ScaleArray", "m * s"},
		{"DivScalar", "DivScalarArray", "m / s"},
	} {
		p("\n// %s returns %s.\n", op.method, op.doc)
		p("func (m %s[T]) %s(s T) %s[T] {\n", name, op.method, name)
		p("\tfor i := range m {\n\t\tm[i] = vector.%s[T](m[i], s)\n\t}\n\treturn m\n}\n", op.kernel)
	}

	p("\n// MulVec returns m·v, treating v as a column vector.\n")
	p("func (m %s[T]) MulVec(v vector.Vec%d[T]) vector.Vec%d[T] {\n", name, s.C, s.R)
	p("\tvar out [%d]T\n\tfor i := range m {\n\t\tout[i] = vector.DotArray[T](m[i], v.Array())\n\t}\n", s.R)
	p("\treturn vector.Vec%dFromArray(out)\n}\n", s.R)
	p("\n// VecMul returns v·m, treating v as a row vector.\n")
	p("func (m %s[T]) VecMul(v vector.Vec%d[T]) vector.Vec%d[T] {\n", name, s.R, s.C)
	p("\tvar out [%d]T\n\tfor j := range out {\n\t\tout[j] = vector.DotArray[T](v.Array(), m.Col(j))\n\t}\n", s.C)
	p("\treturn vector.Vec%dFromArray(out)\n}\n", s.C)

	for n := 1; n <= maxSide; n++ {
		rhs := shape{s.C, n}
		out := shape{s.R, n}
		p("\n// Mul%s returns the %d×%d product m·b.\n", rhs.name(), s.R, n)
		p("func (m %s[T]) Mul%s(b %s[T]) %s[T] {\n", name, rhs.name(), rhs.name(), out.name())
		p("\tvar out %s[T]\n\tfor j := 0; j < %d; j++ {\n\t\tcol := b.Col(j)\n", out.name(), n)
		p("\t\tfor i := range m {\n\t\t\tout[i][j] = vector.DotArray[T](m[i], col)\n\t\t}\n\t}\n\treturn out\n}\n")
	}
	if s.square() {
		p("\n// Mul returns the product m·b.\n")
		p("func (m %s[T]) Mul(b %s[T]) %s[T] { return m.Mul%s(b) }\n", name, name, name, name)
	}

	p("\n// ApproxEqual reports whether every element of m is within eps of b's.\n")
	p("func (m %s[T]) ApproxEqual(b %s[T], eps T) bool {\n", name, name)
	p("\tfor i := range m {\n\t\tif !vector.ApproxEqualArray[T](m[i], b[i], eps) {\n\t\t\treturn false\n\t\t}\n\t}\n\treturn true\n}\n")
	p("\n// String formats m as nested rows, \"[[a, b], [c, d]]\".\n")
	p("func (m %s[T]) String() string { return format[T](m) }\n", name)
	p("\n// Dense copies m into a float64 gonum matrix.\n")
	p("func (m %s[T]) Dense() *mat.Dense { return toDense[T](m[:]) }\n", name)
}

func emitIdentity(buf *bytes.Buffer, n int) {
	name := shape{n, n}.name()
	fmt.Fprintf(buf, "\n// Identity%d returns the %d×%d identity matrix.\n", n, n, n)
	fmt.Fprintf(buf, "func Identity%d[T scalar.Element]() %s[T] {\n", n, name)
	fmt.Fprintf(buf, "\tvar m %s[T]\n\tfor i := range m {\n\t\tm[i][i] = 1\n\t}\n\treturn m\n}\n", name)
}
