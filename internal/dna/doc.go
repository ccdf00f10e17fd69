// Package dna holds the pure sequence and geometry functions behind the
// visualization server. It is structured into small files by concern:
//
//   - sequence.go: complement, GC content, melting temperature, random
//     generation, validation.
//   - geometry.go: double-helix base placement from a sequence and the
//     geometry parameters of a VisualizationConfig.
//   - baseinfo.go: static per-base metadata for the info endpoint.
//
// Everything here is deterministic given its inputs (the random generator
// excepted) and safe for concurrent use.
package dna
