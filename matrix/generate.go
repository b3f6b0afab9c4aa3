// SPDX-License-Identifier: MIT

package matrix

//go:generate go run ../cmd/vecgen -kind matrix -maxside 4 -output matrix_gen.go
