// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Parses(t *testing.T) {
	for _, kind := range kinds() {
		t.Run(kind, func(t *testing.T) {
			src, err := generate(kind)
			require.NoError(t, err)
			require.True(t, bytes.HasPrefix(src, []byte("// SPDX-License-Identifier: MIT\n")))
			require.Contains(t, string(src), "// Code generated by vecgen. DO NOT EDIT.")

			_, err = parser.ParseFile(token.NewFileSet(), kind+".go", src, parser.ParseComments)
			require.NoError(t, err)
		})
	}
}

func TestGenerate_UnknownKind(t *testing.T) {
	_, err := generate("tensor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown kind "tensor"`)
}

// TestGenerate_UpToDate fails when a checked-in file differs from what the
// generator produces; run go generate ./... to refresh.
func TestGenerate_UpToDate(t *testing.T) {
	files := map[string]string{
		"ops":     "../../vector/ops_gen.go",
		"swizzle": "../../vector/swizzle_gen.go",
		"dims":    "../../vector/dims_gen.go",
		"matrix":  "../../matrix/matrix_gen.go",
	}
	for kind, path := range files {
		t.Run(kind, func(t *testing.T) {
			want, err := generate(kind)
			require.NoError(t, err)
			got, err := os.ReadFile(filepath.FromSlash(path))
			require.NoError(t, err)
			assert.Equal(t, string(want), string(got), "%s is stale", path)
		})
	}
}

func TestSwizzleWords(t *testing.T) {
	assert.Equal(t, []string{"XX", "XY", "YX", "YY"}, swizzleWords(axes[:2], 2))

	// the number of swizzles of length 2..4 over d letters is d²+d³+d⁴
	for d, want := range map[int]int{1: 3, 2: 28, 3: 117, 4: 336} {
		total := 0
		for n := 2; n <= 4; n++ {
			total += len(swizzleWords(axes[:d], n))
		}
		assert.Equal(t, want, total, "d=%d", d)
	}
}

func TestEmitSwizzles_Methods(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, emitSwizzles(&buf))
	src := buf.String()

	assert.Contains(t, src, "func (v Vec4[T]) WZYX() Vec4[T] { return Vec4[T]{v.W, v.Z, v.Y, v.X} }")
	assert.Contains(t, src, "func (v Vec3[T]) ZYX() Vec3[T] { return Vec3[T]{v.Z, v.Y, v.X} }")
	assert.Contains(t, src, "func (v Vec1[T]) XX() Vec2[T] { return Vec2[T]{v.X, v.X} }")
	assert.NotContains(t, src, "func (v Vec2[T]) XZ()")
	assert.Equal(t, 3+28+117+336, strings.Count(src, "\nfunc "))
}

func TestEmitDims(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, emitDims(&buf, 6))
	src := buf.String()
	assert.Contains(t, src, "type Vec5[T scalar.Element] = VecN[T, [5]T]")
	assert.Contains(t, src, "func NewVec6[T scalar.Element](e0, e1, e2, e3, e4, e5 T) Vec6[T] {")
	assert.NotContains(t, src, "Vec7")

	for _, bad := range []int{4, 17} {
		buf.Reset()
		assert.Error(t, emitDims(&buf, bad), "maxdim=%d", bad)
	}
}

func TestEmitMatrix(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, emitMatrix(&buf, 2))
	src := buf.String()

	assert.Contains(t, src, "type Mat2x1[T scalar.Element] [2][1]T")
	assert.Contains(t, src, "func (m Mat2x1[T]) MulMat1x2(b Mat1x2[T]) Mat2x2[T] {")
	assert.Contains(t, src, "func (m Mat2x2[T]) Mul(b Mat2x2[T]) Mat2x2[T] { return m.MulMat2x2(b) }")
	assert.NotContains(t, src, "func (m Mat1x2[T]) Mul(")
	assert.NotContains(t, src, "Mat3x")

	buf.Reset()
	assert.Error(t, emitMatrix(&buf, 5))
	buf.Reset()
	assert.Error(t, emitMatrix(&buf, 0))
}
