package models

import "encoding/json"

// Envelope is the response shape shared by every Life Mentor API endpoint:
// {success, message?, data?}. Data stays raw until the caller knows the
// concrete type.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// DecodeData unmarshals the data field into v. An absent data field leaves
// v untouched.
func (e *Envelope) DecodeData(v any) error {
	if len(e.Data) == 0 {
		return nil
	}
	return json.Unmarshal(e.Data, v)
}
