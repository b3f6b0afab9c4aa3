// SPDX-License-Identifier: MIT

package vector_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/vector"
)

func TestSwizzle(t *testing.T) {
	v := vector.NewVec4(1, 2, 3, 4)
	assert.Equal(t, v, v.XYZW())
	assert.Equal(t, vector.NewVec4(4, 3, 2, 1), v.WZYX())
	assert.Equal(t, vector.NewVec2(1, 1), v.XX())
	assert.Equal(t, vector.NewVec3(3, 1, 4), v.ZXW())
	assert.Equal(t, vector.NewVec4(4, 4, 4, 4), v.WWWW())

	v3 := vector.NewVec3(1, 2, 3)
	assert.Equal(t, vector.NewVec3(3, 2, 1), v3.ZYX())
	assert.Equal(t, vector.NewVec2(2, 3), v3.YZ())

	v2 := vector.NewVec2(1, 2)
	assert.Equal(t, vector.NewVec2(2, 1), v2.YX())
	assert.Equal(t, vector.NewVec4(1, 2, 1, 2), v2.XYXY())

	v1 := vector.NewVec1(7)
	assert.Equal(t, vector.NewVec3(7, 7, 7), v1.XXX())
}

// TestSwizzle_Complete checks that every letter word of length 2..4 over the
// available axes exists and picks the named components.
func TestSwizzle_Complete(t *testing.T) {
	axes := "XYZW"
	sources := []any{
		vector.NewVec1(1),
		vector.NewVec2(1, 2),
		vector.NewVec3(1, 2, 3),
		vector.NewVec4(1, 2, 3, 4),
	}
	wantCounts := []int{3, 28, 117, 336}

	for d, src := range sources {
		letters := axes[:d+1]
		rv := reflect.ValueOf(src)
		count := 0
		for _, word := range words(letters, 2, 4) {
			m := rv.MethodByName(word)
			require.True(t, m.IsValid(), "Vec%d.%s missing", d+1, word)

			out := m.Call(nil)[0]
			arr := out.MethodByName("Array").Call(nil)[0]
			require.Equal(t, len(word), arr.Len(), "Vec%d.%s", d+1, word)
			for i, r := range word {
				want := int64(indexOf(axes, r) + 1)
				require.Equal(t, want, arr.Index(i).Int(), "Vec%d.%s[%d]", d+1, word, i)
			}
			count++
		}
		assert.Equal(t, wantCounts[d], count, "Vec%d", d+1)
	}
}

func words(letters string, minLen, maxLen int) []string {
	var out []string
	var grow func(prefix string)
	grow = func(prefix string) {
		if len(prefix) >= minLen {
			out = append(out, prefix)
		}
		if len(prefix) == maxLen {
			return
		}
		for _, r := range letters {
			grow(prefix + string(r))
		}
	}
	grow("")
	return out
}

func indexOf(s string, r rune) int {
	for i, c := range s {
		if c == r {
			return i
		}
	}
	return -1
}
