// Package road obtains road-network distances from an external routing
// service, with a per-pair cache and graceful degradation to geodesic
// distances.
//
// The service is abstracted by Router, which has two backends:
//
//   - OSRMRouter talks to an OSRM HTTP server (/route and /table services).
//   - GoogleRouter uses the Google Maps Directions and Distance Matrix APIs.
//
// Provider wraps a Router and owns all mutable state that used to be global:
//
//   - the Pairwise Cache, keyed on the exact ordered (from, to) coordinate
//     pair. It is append-only, unbounded and never invalidated. Concurrent
//     writers racing on the same key may duplicate network work; last writer
//     wins, which is harmless because values for a key never change.
//   - the request timeouts (≈1s per pair, ≈5s per table).
//
// Failure policy: Provider never returns a network error. Distance falls back
// to geo.Haversine and does not cache the fallback, so a later call can
// succeed once the service recovers. Table reports StatusUnavailable and no
// matrix. A Provider with a nil Router models a host without a network stack
// and takes the same fallback path on every call.
package road
