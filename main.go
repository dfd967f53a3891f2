package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/baalimago/cab/internal"
	"github.com/baalimago/cab/internal/utils"
	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/go_away_boilerplate/pkg/shutdown"
)

const usage = `cab - (c)ampus (a)ssistant (b)ridge

A small bridge to the campus assistant backend. Lists courses, FAQs and
recent enrollments, creates enrollments, probes backend health and routes
free-text questions to the assistant chat.

Prerequisites:
  - (Optional) Set the CAB_ADMIN_TOKEN environment variable to authorize the enrollments listing
  - (Optional) Set the NO_COLOR environment variable to disable ansi color output

Usage: cab [flags] <command>

Flags:
  -u, -url string             Set the backend base URL. (default is found in bridgeConfig.json)
  -to, -timeout int           Set the per-call timeout in milliseconds. (default 12000)
  -at, -admin-token string    Set the admin token for privileged reads. (default is CAB_ADMIN_TOKEN)
  -l, -limit int              Set the max amount of recent enrollments to list. (default unlimited)
  -s, -source string          Filter recent enrollments on signup source. (default unfiltered)
  -r, -raw bool               Set to true to print the raw backend payload instead of display text. (default false)

Commands:
  h|help                 Display this help message
  c|courses              List all course summaries
  f|faqs                 List the frequently asked questions
  e|enrollments          List the most recent enrollments (admin token required by most backends)
  n|enroll <json>        Create an enrollment from the given JSON payload
  hp|health              Probe backend health
  a|ask <text>           Ask the assistant anything, free-text
  v|version              Print version and dependency info

Examples:
  - cab courses
  - cab -r faqs
  - cab -l 5 -s website enrollments
  - cab enroll '{"full_name": "Ada Lovelace", "program_code": "CS101"}'
  - cab ask "which courses do you offer?"
`

func run(args []string) int {
	runner, err := internal.Setup(usage, args)
	if err != nil {
		if errors.Is(err, utils.ErrUserInitiatedExit) {
			return 0
		}
		ancli.PrintErr(fmt.Sprintf("failed to setup: %v\n", err))
		return 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { shutdown.Monitor(cancel) }()
	err = runner.Run(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrUserInitiatedExit) {
			return 0
		}
		ancli.PrintErr(fmt.Sprintf("failed to run: %v\n", err))
		return 1
	}
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK("things seems to have worked out. Bye bye! 🚀\n")
	}
	return 0
}

func main() {
	ancli.SetupSlog()
	os.Exit(run(os.Args[1:]))
}
