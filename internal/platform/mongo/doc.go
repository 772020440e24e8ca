// Package mongo implements the store interfaces on top of a MongoDB
// document store. It owns the process-wide connection handle with its
// init-once contract, and maps driver errors onto the sentinel errors
// defined in internal/store. Prices are persisted as Decimal128 so
// monetary values never degrade to binary floats.
package mongo
