// Package api declares the wire models of the HTTP surface.
package api

import (
	"bytes"
	"encoding/json"
)

// ActivityView is the transport shape of one activity.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// DirectoryEntry pairs an activity name with its view.
type DirectoryEntry struct {
	Name     string
	Activity ActivityView
}

// Directory is the GET /activities body: a JSON object keyed by activity
// name. Encoded by hand so entries keep registry order instead of the
// sorted-key order encoding/json gives maps.
type Directory []DirectoryEntry

// MarshalJSON implements json.Marshaler.
func (d Directory) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Activity)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MessageResponse confirms a successful roster mutation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse reports a rejected operation.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
