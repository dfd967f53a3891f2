package bridge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/baalimago/cab/pkg/models"
)

// Per-operation failure categories. Each domain operation substitutes its
// own category for the raw transport error, with the cause kept reachable
// through errors.Unwrap.
var (
	ErrCoursesUnavailable     = errors.New("failed to fetch course summaries")
	ErrFAQsUnavailable        = errors.New("failed to fetch FAQs")
	ErrEnrollmentsUnavailable = errors.New("failed to fetch recent enrollments")
	ErrEnrollFailed           = errors.New("failed to create enrollment")
	ErrChatUnavailable        = errors.New("chat service is unavailable")
)

// adminTokenHeader carries the admin credential on privileged reads.
const adminTokenHeader = "X-Admin-Token"

// Courses fetches all course summaries.
func (c *Client) Courses(ctx context.Context) (*models.CoursesPayload, error) {
	payload, err := c.get(ctx, "/courses/summary/all", callOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCoursesUnavailable, err)
	}
	courses := &models.CoursesPayload{}
	if err := decodeInto(payload, courses); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCoursesUnavailable, err)
	}
	return courses, nil
}

// FAQs fetches the FAQ list.
func (c *Client) FAQs(ctx context.Context) ([]models.FAQ, error) {
	payload, err := c.get(ctx, "/faqs", callOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFAQsUnavailable, err)
	}
	faqs, err := decodeList[models.FAQ](payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFAQsUnavailable, err)
	}
	return faqs, nil
}

// RecentEnrollments lists the latest enrollments. Limit and source are
// only included in the query when set, and the admin token header is only
// attached when one is configured.
func (c *Client) RecentEnrollments(ctx context.Context, limit int, source string) ([]models.Enrollment, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if source != "" {
		query.Set("source", source)
	}
	path := "/enrollments/recent"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	opts := callOptions{}
	if token := c.getAdminToken(); token != "" {
		opts.header = http.Header{}
		opts.header.Set(adminTokenHeader, token)
	}
	payload, err := c.get(ctx, path, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEnrollmentsUnavailable, err)
	}
	enrollments, err := decodeList[models.Enrollment](payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEnrollmentsUnavailable, err)
	}
	return enrollments, nil
}

// Enroll submits an enrollment. The payload is passed through unmodified,
// the backend owns its schema.
func (c *Client) Enroll(ctx context.Context, payload any) (Payload, error) {
	receipt, err := c.post(ctx, "/enroll", payload, callOptions{})
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %w", ErrEnrollFailed, err)
	}
	return receipt, nil
}

// Health probes the backend. Unlike the other operations the raw outcome
// is returned without category substitution.
func (c *Client) Health(ctx context.Context) (Payload, error) {
	return c.get(ctx, "/health", callOptions{})
}
