// Package assert checks block-processing contracts on the audio path.
//
// The checks are only active when building with the 'debug' build tag:
//
//	go test -tags debug ./...
//
// Without the tag every function is an empty stub the compiler inlines
// away. Violations are programming errors in graph construction, so the
// debug build panics instead of returning an error.
package assert
