// Package domain contains the core business entities of the shop backend:
// users with bcrypt-hashed credentials and catalog products with exact
// decimal prices. Entities validate themselves; persistence and transport
// concerns live elsewhere.
package domain
