// SPDX-License-Identifier: MIT

package vector_test

import (
	"fmt"

	"github.com/katalvlaran/lvmath/vector"
)

func ExampleVec3_Cross() {
	x := vector.Vec3UnitX[float64]()
	y := vector.Vec3UnitY[float64]()
	fmt.Println(x.Cross(y))
	// Output: [0, 0, 1]
}

func ExampleVec4_WZYX() {
	v := vector.NewVec4(1, 2, 3, 4)
	fmt.Println(v.WZYX(), v.XX(), v.ZYX())
	// Output: [4, 3, 2, 1] [1, 1] [3, 2, 1]
}

func ExampleVec2_Normalized() {
	v := vector.NewVec2(3.0, 4.0)
	fmt.Println(v.Length(), v.Normalized())
	// Output: 5 [0.6000000000000001, 0.8]
}

func ExampleVecN() {
	a := vector.NewVec6[int](1, 2, 3, 4, 5, 6)
	b := vector.VecNOne[int, [6]int]()
	fmt.Println(a.Add(b), a.Dot(b), a.At(5))
	// Output: [2, 3, 4, 5, 6, 7] 21 6
}

func ExampleVec3_AddAssign() {
	pos := vector.NewVec3(0.0, 10.0, 0.0)
	vel := vector.NewVec3(1.0, -2.0, 0.5)
	for range 3 {
		pos.AddAssign(vel)
	}
	fmt.Println(pos)
	// Output: [3, 4, 1.5]
}
