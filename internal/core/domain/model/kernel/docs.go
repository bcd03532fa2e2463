// Package kernel provides shared value objects used across the marketplace
// domain model. It currently contains UUID, the identity value object that
// every actor-referencing aggregate builds on.
//
// Value objects in this package are immutable, validate themselves, and can
// only be created through their constructor functions.
package kernel
