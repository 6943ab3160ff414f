// Package models defines data structures used across the application.
// File: models/envelope.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// StatusSuccess is the only envelope status the backend uses for a
// successful call; anything else is a failure regardless of HTTP code.
const StatusSuccess = "success"

// ----------------------- response envelope -----------------------

// Envelope is the uniform `{status, message, data}` wrapper every backend
// response arrives in. Data is kept raw so each caller can decode its own
// payload shape. Raw holds the full response body; a few endpoints put
// fields next to `status` instead of inside `data` and callers need to
// reach them.
type Envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Raw     json.RawMessage `json:"-"`
}

// OK reports whether the backend marked the call successful.
func (e *Envelope) OK() bool {
	return e != nil && e.Status == StatusSuccess
}

// DecodeData unmarshals the envelope's data payload into v.
func (e *Envelope) DecodeData(v interface{}) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("envelope has no data payload")
	}
	return json.Unmarshal(e.Data, v)
}

// ----------------------- flexible identifiers -----------------------

// ID is an entity identifier as the backend sends it. The backend is not
// consistent about encoding ids as JSON numbers or strings, so both decode
// to the same value.
type ID string

// UnmarshalJSON accepts either `"42"` or `42`.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }
