package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/baalimago/cab/pkg/bridge"
	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
)

func newBridgeServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/courses/summary/all":
			w.Write([]byte(`{"courses":[{"summary":"Algebra I"}]}`))
		case "/faqs":
			w.Write([]byte(`[{"question":"Q1","answer":"A1"}]`))
		case "/enrollments/recent":
			w.Write([]byte(`[{"full_name":"Ada Lovelace","program_code":"CS101","created_at":"2025-03-01"}]`))
		case "/enroll":
			w.Write([]byte(`{"id":"e-1"}`))
		case "/health":
			w.Write([]byte(`{"status":"ok"}`))
		case "/chat":
			w.Write([]byte(`{"reply":"hello!"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func Test_runners_printExpectedOutput(t *testing.T) {
	ts := newBridgeServer(t)
	defer ts.Close()
	client := bridge.New(bridge.Configurations{URL: ts.URL, TimeoutMS: 2000})

	testCases := []struct {
		desc            string
		runner          interface{ Run(context.Context) error }
		wantOutExactly  string
		wantOutContains string
	}{
		{
			desc:           "courses prints display text",
			runner:         coursesRunner{client: client},
			wantOutExactly: "Algebra I\n",
		},
		{
			desc:            "courses raw prints payload",
			runner:          coursesRunner{client: client, raw: true},
			wantOutContains: `"summary": "Algebra I"`,
		},
		{
			desc:           "faqs prints display text",
			runner:         faqsRunner{client: client},
			wantOutExactly: "Q1: A1\n",
		},
		{
			desc:           "enrollments prints display text",
			runner:         enrollmentsRunner{client: client},
			wantOutExactly: "Ada Lovelace enrolled in CS101 on 2025-03-01\n",
		},
		{
			desc:           "enroll prints receipt",
			runner:         enrollRunner{client: client, payload: `{"full_name":"Ada"}`},
			wantOutExactly: "{\"id\":\"e-1\"}\n",
		},
		{
			desc:           "health prints status",
			runner:         healthRunner{client: client},
			wantOutExactly: "{\"status\":\"ok\"}\n",
		},
		{
			desc:           "ask prints chat reply",
			runner:         askRunner{client: client, message: "when do you open?"},
			wantOutExactly: "hello!\n",
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			gotStdout := testboil.CaptureStdout(t, func(t *testing.T) {
				if err := tC.runner.Run(context.Background()); err != nil {
					t.Fatalf("unexpected err: %v", err)
				}
			})
			if tC.wantOutExactly != "" {
				testboil.FailTestIfDiff(t, gotStdout, tC.wantOutExactly)
			}
			if tC.wantOutContains != "" {
				testboil.AssertStringContains(t, gotStdout, tC.wantOutContains)
			}
		})
	}
}

func Test_enrollRunner_requiresPayload(t *testing.T) {
	err := enrollRunner{client: bridge.New(bridge.DEFAULT)}.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "JSON payload") {
		t.Fatalf("expected payload error, got: %v", err)
	}
}

func Test_enrollRunner_rejectsMalformedPayload(t *testing.T) {
	err := enrollRunner{client: bridge.New(bridge.DEFAULT), payload: "not json"}.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "failed to parse enrollment payload") {
		t.Fatalf("expected parse error, got: %v", err)
	}
}

func Test_askRunner_requiresMessage(t *testing.T) {
	err := askRunner{client: bridge.New(bridge.DEFAULT)}.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "requires a message") {
		t.Fatalf("expected message error, got: %v", err)
	}
}
