// Package parallel runs per-subpath tessellation work across goroutines.
//
// WorkerPool is a work-stealing pool with per-worker queues. Map fans a
// slice of inputs out over a pool and collects the results in input order,
// so meshes assembled from parallel work are deterministic.
package parallel
