// Package models holds the record shapes returned by the campus backend.
// The backend owns these schemas, cab only reads them. All fields are
// accessed defensively: missing or malformed fields decode to zero values.
package models

import (
	"bytes"
	"encoding/json"
)

// Course is a single course summary entry. The raw backend object is kept
// around so that entries without a summary can still be displayed.
type Course struct {
	Summary string
	raw     json.RawMessage
}

func (c *Course) UnmarshalJSON(b []byte) error {
	var probe struct {
		Summary string `json:"summary"`
	}
	// Tolerate non-object entries, they render through the raw fallback
	_ = json.Unmarshal(b, &probe)
	c.Summary = probe.Summary
	c.raw = bytes.TrimSpace(append(json.RawMessage{}, b...))
	return nil
}

// MarshalJSON round-trips the original backend object.
func (c Course) MarshalJSON() ([]byte, error) {
	if len(c.raw) > 0 {
		return c.raw, nil
	}
	return json.Marshal(struct {
		Summary string `json:"summary"`
	}{c.Summary})
}

// Display returns the summary, or the raw backend object when the
// summary field is absent.
func (c Course) Display() string {
	if c.Summary != "" {
		return c.Summary
	}
	return string(c.raw)
}

// CoursesPayload mirrors the GET /courses/summary/all response.
type CoursesPayload struct {
	Courses []Course `json:"courses"`
}

// UnmarshalJSON tolerates wrong-shape documents: a non-object body or a
// non-array courses field decode to an empty list, which the formatter
// renders as the fixed empty-state text.
func (cp *CoursesPayload) UnmarshalJSON(b []byte) error {
	cp.Courses = nil
	var probe struct {
		Courses json.RawMessage `json:"courses"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return nil
	}
	var courses []Course
	if err := json.Unmarshal(probe.Courses, &courses); err != nil {
		return nil
	}
	cp.Courses = courses
	return nil
}

// FAQ mirrors one entry of the GET /faqs response.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Enrollment mirrors one entry of the GET /enrollments/recent response.
type Enrollment struct {
	FullName    string `json:"full_name"`
	ProgramCode string `json:"program_code"`
	CreatedAt   string `json:"created_at"`
}
