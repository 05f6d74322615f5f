package parallel

// Map applies fn to every element of in and returns the results in input
// order. With a nil pool, a single element, or a closed pool the work runs
// sequentially on the caller.
//
// fn must not touch shared mutable state; each call writes only its own
// result slot.
func Map[T, R any](pool *WorkerPool, in []T, fn func(i int, v T) R) []R {
	out := make([]R, len(in))
	if pool == nil || len(in) < 2 || !pool.IsRunning() {
		for i, v := range in {
			out[i] = fn(i, v)
		}
		return out
	}

	work := make([]func(), len(in))
	for i, v := range in {
		work[i] = func() {
			out[i] = fn(i, v)
		}
	}
	pool.ExecuteAll(work)
	return out
}
