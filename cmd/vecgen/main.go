// SPDX-License-Identifier: MIT

// Command vecgen generates the per-type boilerplate of the vector and matrix
// packages: operator wrappers over the array kernels, swizzle accessors, the
// wide-dimension aliases and the fixed-shape matrix types.
//
// Usage:
//
//	vecgen -kind ops -output ops_gen.go
//	vecgen -kind swizzle -output swizzle_gen.go
//	vecgen -kind dims -output dims_gen.go
//	vecgen -kind matrix -output matrix_gen.go
//
// Or via go:generate from the package directory:
//
//	//go:generate go run ../cmd/vecgen -kind ops -output ops_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
)

var (
	kind    = flag.String("kind", "", "What to generate ("+strings.Join(kinds(), ",")+")")
	output  = flag.String("output", "", "Output file (required)")
	maxDim  = flag.Int("maxdim", 16, "Largest vector dimension for -kind dims")
	maxSide = flag.Int("maxside", 4, "Largest matrix row/column count for -kind matrix")
)

// emitters maps a -kind value to the function writing its source.
var emitters = map[string]func(*bytes.Buffer) error{
	"ops":     func(buf *bytes.Buffer) error { return emitOps(buf) },
	"swizzle": func(buf *bytes.Buffer) error { return emitSwizzles(buf) },
	"dims":    func(buf *bytes.Buffer) error { return emitDims(buf, *maxDim) },
	"matrix":  func(buf *bytes.Buffer) error { return emitMatrix(buf, *maxSide) },
}

func kinds() []string {
	return []string{"ops", "swizzle", "dims", "matrix"}
}

func main() {
	flag.Parse()

	if *kind == "" || *output == "" {
		fmt.Fprintf(os.Stderr, "Error: -kind and -output are required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	src, err := generate(*kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*output, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: write %s: %v\n", *output, err)
		os.Exit(1)
	}
}

// generate renders and gofmt-formats the source for kind.
func generate(kind string) ([]byte, error) {
	emit, ok := emitters[kind]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q (want one of %s)", kind, strings.Join(kinds(), ","))
	}

	var buf bytes.Buffer
	if err := emit(&buf); err != nil {
		return nil, fmt.Errorf("emit %s: %w", kind, err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", kind, err)
	}
	return formatted, nil
}

// header writes the generated-code banner and package clause.
func header(buf *bytes.Buffer, pkg string, imports ...string) {
	fmt.Fprintf(buf, "// SPDX-License-Identifier: MIT\n\n")
	fmt.Fprintf(buf, "// Code generated by vecgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(buf, "package %s\n\n", pkg)
	if len(imports) == 0 {
		return
	}
	fmt.Fprintf(buf, "import (\n")
	for _, imp := range imports {
		if imp == "" {
			fmt.Fprintf(buf, "\n")
			continue
		}
		fmt.Fprintf(buf, "\t%q\n", imp)
	}
	fmt.Fprintf(buf, ")\n")
}
