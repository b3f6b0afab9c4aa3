// SPDX-License-Identifier: MIT

package vector

//go:generate go run ../cmd/vecgen -kind ops -output ops_gen.go
//go:generate go run ../cmd/vecgen -kind swizzle -output swizzle_gen.go
//go:generate go run ../cmd/vecgen -kind dims -maxdim 16 -output dims_gen.go
