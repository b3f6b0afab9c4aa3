// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

const (
	scalarImport = "github.com/katalvlaran/lvmath/scalar"
	vectorImport = "github.com/katalvlaran/lvmath/vector"
	gonumImport  = "gonum.org/v1/gonum/mat"
)

// maxWide is the largest array length vector.Wide accepts.
const maxWide = 16

// axes are the component names of the named vector types, in index order.
var axes = []string{"X", "Y", "Z", "W"}

// vecOp is one method generated for every named vector type.
// In the templates, %[1]s is replaced by the type name (Vec3) and %[2]d by
// its dimension.
type vecOp struct {
	doc  string
	body string
}

var vecOps = []vecOp{
	{"Dim returns %[2]d.", "func (v %[1]s[T]) Dim() int { return %[2]d }"},
	{"All yields (index, component) pairs in order.", "func (v %[1]s[T]) All() iter.Seq2[int, T] { return allArray[T](v.Array()) }"},
	{"String formats v as \"[x, y, ...]\".", "func (v %[1]s[T]) String() string { return formatArray[T](v.Array()) }"},
	{"Add returns v + w.", "func (v %[1]s[T]) Add(w %[1]s[T]) %[1]s[T] {\n\treturn %[1]sFromArray(AddArray[T](v.Array(), w.Array()))\n}"},
	{"Sub returns v - w.", "func (v %[1]s[T]) Sub(w %[1]s[T]) %[1]s[T] {\n\treturn %[1]sFromArray(SubArray[T](v.Array(), w.Array()))\n}"},
	{"Mul returns the elementwise product of v and w.", "func (v %[1]s[T]) Mul(w %[1]s[T]) %[1]s[T] {\n\treturn %[1]sFromArray(MulArray[T](v.Array(), w.Array()))\n}"},
	{"Div returns the elementwise quotient of v and w.", "func (v %[1]s[T]) Div(w %[1]s[T]) %[1]s[T] {\n\treturn %[1]sFromArray(DivArray[T](v.Array(), w.Array()))\n}"},
	{"AddArr returns v + a for a raw component array.", "func (v %[1]s[T]) AddArr(a [%[2]d]T) %[1]s[T] {\n\treturn %[1]sFromArray(AddArray[T](v.Array(), a))\n}"},
	{"SubArr returns v - a for a raw component array.", "func (v %[1]s[T]) SubArr(a [%[2]d]T) %[1]s[T] {\n\treturn %[1]sFromArray(SubArray[T](v.Array(), a))\n}"},
	{"MulArr returns the elementwise product of v and a.", "func (v %[1]s[T]) MulArr(a [%[2]d]T) %[1]s[T] {\n\treturn %[1]sFromArray(MulArray[T](v.Array(), a))\n}"},
	{"DivArr returns the elementwise quotient of v and a.", "func (v %[1]s[T]) DivArr(a [%[2]d]T) %[1]s[T] {\n\treturn %[1]sFromArray(DivArray[T](v.Array(), a))\n}"},
	{"AddAssign sets v to v + w.", "func (v *%[1]s[T]) AddAssign(w %[1]s[T]) { *v = v.Add(w) }"},
	{"SubAssign sets v to v - w.", "func (v *%[1]s[T]) SubAssign(w %[1]s[T]) { *v = v.Sub(w) }"},
	{"MulAssign sets v to v * w elementwise.", "func (v *%[1]s[T]) MulAssign(w %[1]s[T]) { *v = v.Mul(w) }"},
	{"DivAssign sets v to v / w elementwise.", "func (v *%[1]s[T]) DivAssign(w %[1]s[T]) { *v = v.Div(w) }"},
	{"Scale returns v * s.", "func (v %[1]s[T]) Scale(s T) %[1]s[T] {\n\treturn %[1]sFromArray(ScaleArray[T](v.Array(), s))\n}"},
	{"DivScalar returns v / s.", "func (v %[1]s[T]) DivScalar(s T) %[1]s[T] {\n\treturn %[1]sFromArray(DivScalarArray[T](v.Array(), s))\n}"},
	{"ScaleAssign sets v to v * s.", "func (v *%[1]s[T]) ScaleAssign(s T) { *v = v.Scale(s) }"},
	{"DivScalarAssign sets v to v / s.", "func (v *%[1]s[T]) DivScalarAssign(s T) { *v = v.DivScalar(s) }"},
	{"Neg returns -v.", "func (v %[1]s[T]) Neg() %[1]s[T] { return %[1]sFromArray(NegArray[T](v.Array())) }"},
	{"Dot returns v · w.", "func (v %[1]s[T]) Dot(w %[1]s[T]) T { return DotArray[T](v.Array(), w.Array()) }"},
	{"DotArr returns v · a for a raw component array.", "func (v %[1]s[T]) DotArr(a [%[2]d]T) T { return DotArray[T](v.Array(), a) }"},
	{"LengthSquared returns |v|².", "func (v %[1]s[T]) LengthSquared() T { return LengthSquaredArray[T](v.Array()) }"},
	{"Length returns |v|.", "func (v %[1]s[T]) Length() T { return LengthArray[T](v.Array()) }"},
	{"Distance returns |v - w|.", "func (v %[1]s[T]) Distance(w %[1]s[T]) T { return v.Sub(w).Length() }"},
	{"DistanceSquared returns |v - w|².", "func (v %[1]s[T]) DistanceSquared(w %[1]s[T]) T { return v.Sub(w).LengthSquared() }"},
	{"Normalized returns v / |v|, or the zero vector when |v| == 0.", "func (v %[1]s[T]) Normalized() %[1]s[T] { return %[1]sFromArray(NormalizedArray[T](v.Array())) }"},
	{"Normalize scales v to unit length in place.", "func (v *%[1]s[T]) Normalize() { *v = v.Normalized() }"},
	{"Reflect reflects v about the unit vector normal.", "func (v %[1]s[T]) Reflect(normal %[1]s[T]) %[1]s[T] {\n\treturn %[1]sFromArray(ReflectArray[T](v.Array(), normal.Array()))\n}"},
	{"Angle returns the angle between v and w in radians.", "func (v %[1]s[T]) Angle(w %[1]s[T]) T { return AngleArray[T](v.Array(), w.Array()) }"},
	{"ApproxEqual reports whether every component of v is within eps of w's.", "func (v %[1]s[T]) ApproxEqual(w %[1]s[T], eps T) bool {\n\treturn ApproxEqualArray[T](v.Array(), w.Array(), eps)\n}"},
}

// emitOps writes the operator wrappers of Vec1..Vec4.
func emitOps(buf *bytes.Buffer) error {
	header(buf, "vector", "iter")
	for d := 1; d <= len(axes); d++ {
		name := fmt.Sprintf("Vec%d", d)
		fmt.Fprintf(buf, "\nvar _ Vector[float64, [%d]float64] = %s[float64]{}\n", d, name)
		expand := strings.NewReplacer("%[1]s", name, "%[2]d", strconv.Itoa(d))
		for _, op := range vecOps {
			fmt.Fprintf(buf, "\n// %s\n", expand.Replace(op.doc))
			fmt.Fprintf(buf, "%s\n", expand.Replace(op.body))
		}
	}
	return nil
}

// swizzleWords returns every word of length n over letters, in
// lexicographic order of letter position.
func swizzleWords(letters []string, n int) []string {
	if n == 0 {
		return []string{""}
	}
	var out []string
	for _, head := range letters {
		for _, tail := range swizzleWords(letters, n-1) {
			out = append(out, head+tail)
		}
	}
	return out
}

// emitSwizzles writes the letter accessors of Vec1..Vec4.
func emitSwizzles(buf *bytes.Buffer) error {
	header(buf, "vector")
	for d := 1; d <= len(axes); d++ {
		name := fmt.Sprintf("Vec%d", d)
		letters := axes[:d]
		fmt.Fprintf(buf, "\n// Swizzles of %s. Each method returns the components named by its\n", name)
		fmt.Fprintf(buf, "// letters, in order; letters may repeat.\n")
		for n := 2; n <= len(axes); n++ {
			for _, word := range swizzleWords(letters, n) {
				fields := make([]string, n)
				for i, r := range word {
					fields[i] = "v." + string(r)
				}
				fmt.Fprintf(buf, "\nfunc (v %s[T]) %s() Vec%d[T] { return Vec%d[T]{%s} }\n",
					name, word, n, n, strings.Join(fields, ", "))
			}
		}
	}
	return nil
}

// emitDims writes the aliases and constructors of Vec5..Vec{maxDim}.
func emitDims(buf *bytes.Buffer, maxDim int) error {
	if maxDim < 5 || maxDim > maxWide {
		return fmt.Errorf("maxdim %d: want 5..%d", maxDim, maxWide)
	}
	header(buf, "vector", scalarImport)
	for d := 5; d <= maxDim; d++ {
		params := make([]string, d)
		for i := range params {
			params[i] = fmt.Sprintf("e%d", i)
		}
		list := strings.Join(params, ", ")
		fmt.Fprintf(buf, "\n// Vec%d is the %d-dimensional vector.\n", d, d)
		fmt.Fprintf(buf, "type Vec%d[T scalar.Element] = VecN[T, [%d]T]\n", d, d)
		fmt.Fprintf(buf, "\n// NewVec%d returns the vector (%s).\n", d, list)
		fmt.Fprintf(buf, "func NewVec%d[T scalar.Element](%s T) Vec%d[T] {\n", d, list, d)
		fmt.Fprintf(buf, "\treturn VecN[T, [%d]T]{Elements: [%d]T{%s}}\n}\n", d, d, list)
		fmt.Fprintf(buf, "\nvar _ Vector[float64, [%d]float64] = Vec%d[float64]{}\n", d, d)
	}
	return nil
}
