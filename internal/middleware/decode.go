package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

var ErrEmptyBody = errors.New("request body is empty")

// DecodeJSON decodes a JSON request body into v. Unknown fields are
// ignored; an empty body is reported distinctly so handlers can return
// the right message.
func DecodeJSON(r *http.Request, v interface{}) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == io.EOF {
		return ErrEmptyBody
	}
	return err
}
