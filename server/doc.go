// Package server exposes maze generation over HTTP with gin.
//
// Routes (under /v1):
//
//	POST   /mazes       generate a maze, store it, return it as JSON (201)
//	GET    /mazes/:id   fetch a stored maze; ?format=json|text|pbm|png|stats
//	DELETE /mazes/:id   drop a stored maze (204)
//	GET    /algorithms  list generator names
//
// Mazes live in a bounded in-memory Store keyed by uuid; the oldest entry
// is evicted once capacity is reached. Every response carries the seed
// used, so any maze can be regenerated exactly.
package server
