package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// LinkID accepts a link id sent as either a JSON string or number. Browser
// clients mint ids from Date.now(), which some send unquoted.
type LinkID string

func (id *LinkID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*id = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		*id = LinkID(strings.TrimSpace(s))
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(trimmed, &num); err == nil {
		*id = LinkID(num.String())
		return nil
	}

	return fmt.Errorf("link id: expected string or number, got %s", string(data))
}

func (id LinkID) String() string {
	return string(id)
}
