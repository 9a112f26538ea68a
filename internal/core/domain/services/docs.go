// Package services contains stateless domain services for the order
// lifecycle. Domain services hold policy that spans an aggregate's internals
// without belonging to any single entity; here that is the derivation of an
// order's aggregate status from its items' kitchen statuses.
package services
