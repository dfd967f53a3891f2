package internal

import (
	"errors"
	"testing"

	"github.com/baalimago/cab/internal/utils"
	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
)

func Test_getModeFromArgs(t *testing.T) {
	testCases := []struct {
		desc    string
		given   string
		want    Mode
		wantErr bool
	}{
		{desc: "courses long", given: "courses", want: COURSES},
		{desc: "courses short", given: "c", want: COURSES},
		{desc: "faqs long", given: "faqs", want: FAQS},
		{desc: "faqs short", given: "f", want: FAQS},
		{desc: "enrollments long", given: "enrollments", want: ENROLLMENTS},
		{desc: "enrollments short", given: "e", want: ENROLLMENTS},
		{desc: "enroll long", given: "enroll", want: ENROLL},
		{desc: "enroll short", given: "n", want: ENROLL},
		{desc: "health long", given: "health", want: HEALTH},
		{desc: "health short", given: "hp", want: HEALTH},
		{desc: "ask long", given: "ask", want: ASK},
		{desc: "ask short", given: "a", want: ASK},
		{desc: "help long", given: "help", want: HELP},
		{desc: "version long", given: "version", want: VERSION},
		{desc: "unknown errors", given: "xyzzy", want: HELP, wantErr: true},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			got, err := getModeFromArgs(tC.given)
			if tC.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tC.wantErr && err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got != tC.want {
				t.Fatalf("expected mode: %v, got: %v", tC.want, got)
			}
		})
	}
}

func Test_Setup_helpPrintsUsageAndExitsCleanly(t *testing.T) {
	gotStdout := testboil.CaptureStdout(t, func(t *testing.T) {
		_, err := Setup("usage-string", []string{"help"})
		if !errors.Is(err, utils.ErrUserInitiatedExit) {
			t.Fatalf("expected ErrUserInitiatedExit, got: %v", err)
		}
	})
	testboil.FailTestIfDiff(t, gotStdout, "usage-string")
}

func Test_Setup_noArgsPrintsUsage(t *testing.T) {
	gotStdout := testboil.CaptureStdout(t, func(t *testing.T) {
		_, err := Setup("usage-string", []string{})
		if !errors.Is(err, utils.ErrUserInitiatedExit) {
			t.Fatalf("expected ErrUserInitiatedExit, got: %v", err)
		}
	})
	testboil.FailTestIfDiff(t, gotStdout, "usage-string")
}

func Test_Setup_unknownCommandErrors(t *testing.T) {
	_, err := Setup("usage-string", []string{"xyzzy"})
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
}

func Test_Setup_buildsRunnersWithConfig(t *testing.T) {
	t.Setenv("CAB_CONFIG_HOME", t.TempDir())
	testCases := []struct {
		desc string
		args []string
	}{
		{desc: "courses", args: []string{"courses"}},
		{desc: "faqs", args: []string{"faqs"}},
		{desc: "enrollments", args: []string{"-l", "5", "enrollments"}},
		{desc: "enroll", args: []string{"enroll", `{"full_name":"Ada"}`}},
		{desc: "health", args: []string{"health"}},
		{desc: "ask", args: []string{"ask", "hello", "there"}},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			runner, err := Setup("usage-string", tC.args)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if runner == nil {
				t.Fatal("expected a runner")
			}
		})
	}
}

func Test_Setup_envTokenOverridesFile(t *testing.T) {
	t.Setenv("CAB_CONFIG_HOME", t.TempDir())
	t.Setenv("CAB_ADMIN_TOKEN", "env-token")
	client, err := loadBridgeConfig(defaultFlags)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if client == nil {
		t.Fatal("expected a client")
	}
}
