// Package llm holds what the analyzer adapters share: prompt rendering and
// decoding of the model's JSON answer.
package llm
