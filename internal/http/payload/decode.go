package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var errTrailingData = errors.New("unexpected data after json object")

func DecodePayload(r *http.Request, object any) (err error) {
	decoder := json.NewDecoder(r.Body)
	defer func() {
		errClose := r.Body.Close()
		if err == nil && errClose != nil {
			err = fmt.Errorf("closing request body: %w", errClose)
		}
	}()

	if err = decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	if _, err = decoder.Token(); err != io.EOF {
		return fmt.Errorf("decoding json payload: %w", errTrailingData)
	}

	return nil
}
