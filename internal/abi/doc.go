// Package abi provides internal utilities for fixed-width field encoding.
//
// This package contains the explicit byte-order primitives, two's-complement
// sign handling, and representable-range checks used by the structpack
// engines.
//
// # Contents
//
//   - byteorder.go: explicit little/big-endian append and read primitives
//   - range.go: representable-range checks per byte width
//   - typename.go: diagnostic type naming for error reports
//
// This package is internal to structpack.
package abi
