package shared

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// One validator for the whole API surface. validator.Validate is safe for
// concurrent use and caches struct metadata, so sharing it beats a
// per-handler instance.
var validate = validator.New()

// DecodeJSON decodes the request body into v.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// ValidateRequest checks v against its validate struct tags. Request types
// carrying their own Validate method are checked with that instead.
func ValidateRequest(v interface{}) error {
	if dv, ok := v.(interface{ Validate() error }); ok {
		return dv.Validate()
	}
	return validate.Struct(v)
}
