// Package format renders backend records as display text for chat and
// voice surfaces. Every function is total: bad input yields a fixed
// fallback string, never an error.
package format

import (
	"fmt"
	"strings"

	"github.com/baalimago/cab/pkg/models"
)

const (
	NoCourses     = "No courses available at the moment."
	NoFAQs        = "No FAQs available right now."
	NoEnrollments = "No recent enrollments."
)

// Courses renders one line per course summary. Entries without a summary
// field fall back to their raw backend representation.
func Courses(payload *models.CoursesPayload) string {
	if payload == nil || len(payload.Courses) == 0 {
		return NoCourses
	}
	lines := make([]string, 0, len(payload.Courses))
	for _, course := range payload.Courses {
		lines = append(lines, course.Display())
	}
	return strings.Join(lines, "\n")
}

// FAQs renders one 'question: answer' line per entry.
func FAQs(faqs []models.FAQ) string {
	if len(faqs) == 0 {
		return NoFAQs
	}
	lines := make([]string, 0, len(faqs))
	for _, faq := range faqs {
		lines = append(lines, fmt.Sprintf("%v: %v", faq.Question, faq.Answer))
	}
	return strings.Join(lines, "\n")
}

// Enrollments renders one line per enrollment. Entries without a program
// code read as 'a course'.
func Enrollments(enrollments []models.Enrollment) string {
	if len(enrollments) == 0 {
		return NoEnrollments
	}
	lines := make([]string, 0, len(enrollments))
	for _, enr := range enrollments {
		program := enr.ProgramCode
		if program == "" {
			program = "a course"
		}
		lines = append(lines, fmt.Sprintf("%v enrolled in %v on %v", enr.FullName, program, enr.CreatedAt))
	}
	return strings.Join(lines, "\n")
}
