// Package server exposes the city registry, matrix builds and route
// searches over HTTP for a presentation front end.
//
// The server keeps one current matrix snapshot. Building a matrix swaps the
// snapshot atomically; searches run on the snapshot they started with and
// never observe a later build.
//
//	GET  /api/cities          city names, coordinates and bounding box
//	GET  /api/matrix          current snapshot
//	POST /api/matrix          build with {"metric": "aerial"|"road"}
//	POST /api/matrix/forced   build with one road request per pair
//	GET  /api/solve/:algo     run "nearest" or "brute" on the snapshot
package server
