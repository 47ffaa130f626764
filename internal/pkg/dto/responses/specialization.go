package responses

import (
	"errors"
	"strings"

	"github.com/goccy/go-json"
)

type Specialization struct {
	ID          int64  `json:"id"`
	Key         string `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	IsActive    bool   `json:"isActive"`
}

var errEmptyBody = errors.New("empty response body")

// specializationWire mirrors the backend body, which exposes the identifier
// as "id" or "_id" and as either a string or a number.
type specializationWire struct {
	ID          json.RawMessage `json:"id"`
	MongoID     json.RawMessage `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	IsActive    bool            `json:"isActive"`
}

// UnmarshalJSON keeps the raw identifier in Key. ID stays zero here; the
// caller fills it through the ID normalizer.
func (s *Specialization) UnmarshalJSON(data []byte) error {
	var wire specializationWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	s.Key = rawIdentifier(wire.ID)
	if s.Key == "" {
		s.Key = rawIdentifier(wire.MongoID)
	}
	s.Name = wire.Name
	s.Description = wire.Description
	s.Icon = wire.Icon
	s.IsActive = wire.IsActive
	return nil
}

func rawIdentifier(raw json.RawMessage) string {
	value := strings.TrimSpace(string(raw))
	if value == "" || value == "null" {
		return ""
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}
	return value
}

// MutationResult is the body of toggle-active and delete answers.
type MutationResult struct {
	Message string `json:"message,omitempty"`
}

// APIErrorBody is the structured error body the backend may send on non-2xx.
type APIErrorBody struct {
	Detail  string `json:"detail,omitempty"`
	Message string `json:"message,omitempty"`
}

type HealthStatus struct {
	Reachable  bool   `json:"reachable"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message,omitempty"`
}

// APIResponse is a 2xx answer of the backend, body left undecoded.
type APIResponse struct {
	StatusCode int
	Body       []byte
}

// DecodeJSON decodes the body into out; an empty body is an error.
func (r *APIResponse) DecodeJSON(out interface{}) error {
	if r == nil || len(r.Body) == 0 {
		return errEmptyBody
	}
	return json.Unmarshal(r.Body, out)
}

type SpecializationListSnapshot struct {
	State    string           `json:"state"`
	Query    string           `json:"query"`
	Records  []Specialization `json:"records"`
	Filtered []Specialization `json:"filtered"`
}
