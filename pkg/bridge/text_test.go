package bridge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/baalimago/cab/internal/format"
)

func Test_CoursesText(t *testing.T) {
	ts := httptest.NewServer(jsonHandler(t, "/courses/summary/all", `{"courses":[{"summary":"A"},{"summary":"B"}]}`, nil))
	defer ts.Close()

	c := newTestClient(ts.URL)
	got := c.CoursesText(context.Background())
	if got != "A\nB" {
		t.Fatalf("expected joined summaries, got: %q", got)
	}
}

func Test_CoursesText_failureCollapsesToSentence(t *testing.T) {
	c := newTestClient("http://localhost:1")
	got := c.CoursesText(context.Background())
	if got != coursesDownMsg {
		t.Fatalf("expected fixed sentence, got: %q", got)
	}
}

func Test_FAQsText(t *testing.T) {
	ts := httptest.NewServer(jsonHandler(t, "/faqs", `[{"question":"Q1","answer":"A1"}]`, nil))
	defer ts.Close()

	c := newTestClient(ts.URL)
	got := c.FAQsText(context.Background())
	if got != "Q1: A1" {
		t.Fatalf("expected rendered faq, got: %q", got)
	}
}

func Test_FAQsText_failureCollapsesToSentence(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	c := newTestClient(ts.URL)
	got := c.FAQsText(context.Background())
	if got != faqsDownMsg {
		t.Fatalf("expected fixed sentence, got: %q", got)
	}
}

func Test_EnrollmentsText(t *testing.T) {
	ts := httptest.NewServer(jsonHandler(t, "/enrollments/recent", `[{"full_name":"Ada Lovelace","created_at":"2025-03-01"}]`, nil))
	defer ts.Close()

	c := newTestClient(ts.URL)
	got := c.EnrollmentsText(context.Background(), 0, "")
	if got != "Ada Lovelace enrolled in a course on 2025-03-01" {
		t.Fatalf("expected rendered enrollment, got: %q", got)
	}
}

func Test_EnrollmentsText_failureCollapsesToSentence(t *testing.T) {
	c := newTestClient("http://localhost:1")
	got := c.EnrollmentsText(context.Background(), 5, "website")
	if got != enrollmentsDownMsg {
		t.Fatalf("expected fixed sentence, got: %q", got)
	}
}

// A 200 whose body is valid JSON of the wrong shape is a successful
// fetch, so the formatter's empty-state text applies, not the
// backend-down sentence.
func Test_textOps_wrongShape200RendersEmptyState(t *testing.T) {
	testCases := []struct {
		desc string
		path string
		doc  string
		call func(c *Client, ctx context.Context) string
		want string
	}{
		{
			desc: "it should render the courses empty-state for a non-array courses field",
			path: "/courses/summary/all",
			doc:  `{"courses":"oops"}`,
			call: func(c *Client, ctx context.Context) string { return c.CoursesText(ctx) },
			want: format.NoCourses,
		},
		{
			desc: "it should render the faqs empty-state for a non-array body",
			path: "/faqs",
			doc:  `{"not":"a list"}`,
			call: func(c *Client, ctx context.Context) string { return c.FAQsText(ctx) },
			want: format.NoFAQs,
		},
		{
			desc: "it should render the enrollments empty-state for a non-array body",
			path: "/enrollments/recent",
			doc:  `{"entries":[]}`,
			call: func(c *Client, ctx context.Context) string { return c.EnrollmentsText(ctx, 0, "") },
			want: format.NoEnrollments,
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			ts := httptest.NewServer(jsonHandler(t, tC.path, tC.doc, nil))
			defer ts.Close()

			got := tC.call(newTestClient(ts.URL), context.Background())
			if got != tC.want {
				t.Fatalf("expected empty-state text %q, got: %q", tC.want, got)
			}
		})
	}
}
