// Package types defines the codec's closed set of scalar kinds and the
// immutable table mapping format type tags to kinds and widths.
//
// This package is internal to structpack.
package types
