// Package api contains the HTTP handlers for the shop backend: the auth
// endpoints (signup/login) and the product catalog CRUD endpoints. Handlers
// translate between wire payloads and domain entities, and map internal
// errors onto sanitized responses via MapErrorToStatusCode and
// GetSafeErrorMessage.
package api
