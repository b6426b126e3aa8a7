// Package service implements the domain services of scrapledger: typed
// facades over the generic entity stores that validate input, apply
// soft-delete semantics, and keep the priced client-material pairing
// consistent. Storage stays dumb; every business rule lives here.
package service
