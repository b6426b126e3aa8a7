// Package types defines the domain entities, generic record representation,
// configuration, and standard error values for the scrapledger storage system.
package types
