// SPDX-License-Identifier: MIT
// Package vector: serialization.
//
// Vec1..Vec4 encode as records through their struct tags ({"x":1,"y":2}).
// VecN has no component names and encodes as a flat sequence of exactly D
// numbers in both JSON and YAML; decoding any other length fails with
// ErrDimensionMismatch and leaves the receiver unchanged.

package vector

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes v as a JSON array.
func (v VecN[T, A]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Elements)
}

// UnmarshalJSON decodes a JSON array of exactly Dim() numbers.
func (v *VecN[T, A]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("vector: decode json: %w", err)
	}
	return v.assign(elems)
}

// MarshalYAML encodes v as a YAML sequence.
func (v VecN[T, A]) MarshalYAML() (any, error) {
	elems := make([]T, len(v.Elements))
	for i := range elems {
		elems[i] = v.Elements[i]
	}
	return elems, nil
}

// UnmarshalYAML decodes a YAML sequence of exactly Dim() numbers.
func (v *VecN[T, A]) UnmarshalYAML(node *yaml.Node) error {
	var elems []T
	if err := node.Decode(&elems); err != nil {
		return fmt.Errorf("vector: decode yaml: %w", err)
	}
	return v.assign(elems)
}

// assign copies elems into v when the lengths agree.
func (v *VecN[T, A]) assign(elems []T) error {
	if len(elems) != len(v.Elements) {
		return fmt.Errorf("%w: got %d components, want %d", ErrDimensionMismatch, len(elems), len(v.Elements))
	}
	for i := range elems {
		v.Elements[i] = elems[i]
	}
	return nil
}
