package bridge

import (
	"context"
	"fmt"
	"os"

	"github.com/baalimago/cab/internal/format"
	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
)

// Fixed sentences for when an operation fails behind a chat or voice
// surface. Deliberately free of technical detail, the structured
// operations exist for callers who want the cause.
const (
	coursesDownMsg     = "Sorry, I couldn't reach the course catalog right now. Please try again in a moment."
	faqsDownMsg        = "Sorry, I couldn't load the FAQs right now. Please try again in a moment."
	enrollmentsDownMsg = "Sorry, I couldn't look up recent enrollments right now. Please try again in a moment."
)

// CoursesText returns the course summaries as display text, or a single
// user-facing sentence when the backend can't be reached.
func (c *Client) CoursesText(ctx context.Context) string {
	courses, err := c.Courses(ctx)
	if err != nil {
		debugLogErr(err)
		return coursesDownMsg
	}
	return format.Courses(courses)
}

// FAQsText returns the FAQ list as display text.
func (c *Client) FAQsText(ctx context.Context) string {
	faqs, err := c.FAQs(ctx)
	if err != nil {
		debugLogErr(err)
		return faqsDownMsg
	}
	return format.FAQs(faqs)
}

// EnrollmentsText returns the recent enrollments as display text.
func (c *Client) EnrollmentsText(ctx context.Context, limit int, source string) string {
	enrollments, err := c.RecentEnrollments(ctx, limit, source)
	if err != nil {
		debugLogErr(err)
		return enrollmentsDownMsg
	}
	return format.Enrollments(enrollments)
}

// debugLogErr surfaces the swallowed cause when DEBUG is set, since the
// text operations intentionally hide it from the end user.
func debugLogErr(err error) {
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintWarn(fmt.Sprintf("text operation swallowed error: %v\n", err))
	}
}
