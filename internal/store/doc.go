// Package store defines the persistence interfaces consumed by the API
// layer, together with the sentinel errors all implementations map their
// backend failures onto. Concrete implementations live under
// internal/platform.
package store
