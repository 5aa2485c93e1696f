// Package topo implements the Monte Carlo field-line sampling core.
//
// A [Tracer] draws one independent trial: a random start point inside the
// volume, a fixed-length walk along the normalized field direction until the
// path leaves the volume or hits its step bound, and a finite-difference
// curvature estimate averaged over the path endpoints. The [Engine] runs many
// trials, either serially or across a fresh pool of workers distributing work
// through an atomic countdown.
//
// # Numerical Hazards
//
// Field evaluation is singular at charge locations and the curvature formula
// divides by the tangent norm. Neither is guarded: a trial passing through a
// zero-field point yields non-finite values that are returned as-is and count
// toward the requested sample total. Downstream consumers decide how to
// report them.
package topo
