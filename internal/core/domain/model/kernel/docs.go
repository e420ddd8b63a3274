// Package kernel provides the core domain primitives shared by all aggregates
// of the pickup scheduling system.
//
// The package includes:
//   - UUID: a value object for entity identifiers with validation and comparison
//   - ServiceDate: a calendar day ("YYYY-MM-DD") identifying a pickup/dispatch day
//
// Both primitives are immutable and safe for concurrent use. They must be
// created through their constructor functions; zero values fail Validate.
package kernel
