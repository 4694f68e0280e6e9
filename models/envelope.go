package models

import "encoding/json"

// Envelope is the store API's uniform response shape.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

// OK reports whether the envelope carries a successful business result.
func (e *Envelope) OK() bool {
	return e.Code == 200
}

// Decode unmarshals the data payload into out. A missing payload is left as
// out's zero value.
func (e *Envelope) Decode(out any) error {
	if len(e.Data) == 0 {
		return nil
	}
	return json.Unmarshal(e.Data, out)
}
