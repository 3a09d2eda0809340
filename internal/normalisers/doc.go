// Package normalisers turns free-form journal text into structured values.
// Each normaliser is a pure function over text; none of them touch the
// filesystem or the network.
package normalisers
