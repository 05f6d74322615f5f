// Package stroke builds the solid geometry a quad-based stroke needs at
// segment junctions and open ends.
//
// Stroke bands are evaluated analytically per fragment, and an unmasked
// endpoint already contributes a disk of the stroke radius. Round joins
// and round caps therefore need no geometry here. Bevel and miter joins
// and square caps are emitted as triangles, and the endpoint distance test
// is masked at those ends so the disks do not round them off.
//
// The miter test follows the usual limit on 1/sin(θ/2), where θ is the
// angle between the two segments.
package stroke
