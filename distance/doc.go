// Package distance builds the n×n distance matrix the route search reads.
//
// Two metrics are supported:
//
//   - Aerial: every off-diagonal entry is geo.Haversine (symmetric).
//   - Road:   the whole table is requested from the routing service in one
//     call. When that fails the build is silently downgraded to Aerial
//     instead of issuing n² per-pair requests against a public service.
//
// The downgrade is never an error. It is visible in Result: Requested stays
// Road, Effective becomes Aerial and Status is road.StatusUnavailable.
//
// BuildForced is the opt-in slow path: it ignores the table endpoint and
// resolves every off-diagonal entry with a single-pair lookup (each of which
// falls back to Haversine on its own).
//
// Builds are synchronous and perform network I/O for Road; callers that need
// a responsive UI run them on a background goroutine and hand the finished
// Result back. A built matrix is a snapshot and must not be mutated while a
// search is reading it.
package distance
