package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// APIResponse is the wire envelope wrapping most marketplace API
// responses. A response with Success=false is an application error
// regardless of HTTP status.
type APIResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Envelope is the typed form of APIResponse.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

// Collection accepts the two collection shapes the backend serves:
// a bare JSON array or a {"content":[...]} wrapper. Both decode to
// the same Items slice; nothing downstream sees the difference.
type Collection[T any] struct {
	Items []T
}

// UnmarshalJSON implements the tagged-union decode at the boundary.
func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		c.Items = nil
		return nil
	}

	if trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &c.Items)
	}

	if trimmed[0] == '{' {
		var wrapper struct {
			Content []T `json:"content"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return err
		}
		c.Items = wrapper.Content
		return nil
	}

	return fmt.Errorf("collection is neither an array nor a content wrapper")
}

// MarshalJSON writes the normalized array shape.
func (c Collection[T]) MarshalJSON() ([]byte, error) {
	if c.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.Items)
}
