package payload

import (
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

// Decoder decodes a JSON request body and validates it when the target implements
// validation.Validatable.
type Decoder struct{}

func (d Decoder) DecodeJSONPayload(r *http.Request, object any) error {
	if err := DecodePayload(r, object); err != nil {
		return err
	}
	return d.validatePayload(object)
}

func (d Decoder) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
