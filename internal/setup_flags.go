package internal

import (
	"flag"
	"fmt"
	"os"

	"github.com/baalimago/cab/internal/utils"
	"github.com/baalimago/cab/pkg/bridge"
	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
)

type Configurations struct {
	URL        string
	AdminToken string
	// TimeoutMS bounds each backend call, in milliseconds
	TimeoutMS int
	// Limit caps the amount of recent enrollments listed
	Limit int
	// Source filters recent enrollments on their signup source
	Source string
	// PrintRaw prints the undecoded backend payload instead of display text
	PrintRaw bool
}

// parseFlags parses CLI flags into an internal Configurations. Flags
// override config file values, which override defaults.
func parseFlags(defaults Configurations, args []string) (Configurations, []string, error) {
	fs := flag.NewFlagSet("cab", flag.ContinueOnError)

	uShort := fs.String("u", defaults.URL, "Set the backend base URL. Mutually exclusive with url flag.")
	uLong := fs.String("url", defaults.URL, "Set the backend base URL. Mutually exclusive with u flag.")

	toShort := fs.Int("to", defaults.TimeoutMS, "Set the per-call timeout in milliseconds. Mutually exclusive with timeout flag.")
	toLong := fs.Int("timeout", defaults.TimeoutMS, "Set the per-call timeout in milliseconds. Mutually exclusive with to flag.")

	atShort := fs.String("at", defaults.AdminToken, "Set the admin token for privileged reads. Mutually exclusive with admin-token flag.")
	atLong := fs.String("admin-token", defaults.AdminToken, "Set the admin token for privileged reads. Mutually exclusive with at flag.")

	lShort := fs.Int("l", defaults.Limit, "Set the max amount of recent enrollments to list. Mutually exclusive with limit flag.")
	lLong := fs.Int("limit", defaults.Limit, "Set the max amount of recent enrollments to list. Mutually exclusive with l flag.")

	sShort := fs.String("s", defaults.Source, "Filter recent enrollments on signup source. Mutually exclusive with source flag.")
	sLong := fs.String("source", defaults.Source, "Filter recent enrollments on signup source. Mutually exclusive with s flag.")

	printRawShort := fs.Bool("r", defaults.PrintRaw, "Set to true to print the raw backend payload instead of display text.")
	printRawLong := fs.Bool("raw", defaults.PrintRaw, "Set to true to print the raw backend payload instead of display text.")

	err := fs.Parse(args)
	if err != nil {
		return Configurations{}, []string{}, fmt.Errorf("failed to parse args: %w", err)
	}

	postParseArgs := fs.Args()

	url, err := utils.ReturnNonDefault(*uShort, *uLong, defaults.URL)
	exitWithFlagError(err, "u", "url")
	timeoutMS, err := utils.ReturnNonDefault(*toShort, *toLong, defaults.TimeoutMS)
	exitWithFlagError(err, "to", "timeout")
	adminToken, err := utils.ReturnNonDefault(*atShort, *atLong, defaults.AdminToken)
	exitWithFlagError(err, "at", "admin-token")
	limit, err := utils.ReturnNonDefault(*lShort, *lLong, defaults.Limit)
	exitWithFlagError(err, "l", "limit")
	source, err := utils.ReturnNonDefault(*sShort, *sLong, defaults.Source)
	exitWithFlagError(err, "s", "source")

	printRaw := *printRawShort || *printRawLong

	newConf := Configurations{
		URL:        url,
		AdminToken: adminToken,
		TimeoutMS:  timeoutMS,
		Limit:      limit,
		Source:     source,
		PrintRaw:   printRaw,
	}

	return newConf, postParseArgs, nil
}

// applyFlagOverrides onto the file-sourced bridge configuration. Only
// non-default flags win, keeping the flags > file > default convention.
func applyFlagOverrides(bConf *bridge.Configurations, flagSet, defaultFlags Configurations) {
	if flagSet.URL != defaultFlags.URL {
		bConf.URL = flagSet.URL
	}
	if flagSet.TimeoutMS != defaultFlags.TimeoutMS {
		bConf.TimeoutMS = flagSet.TimeoutMS
	}
	if flagSet.AdminToken != defaultFlags.AdminToken {
		bConf.AdminToken = flagSet.AdminToken
	}
}

func exitWithFlagError(err error, shortFlag, longflag string) {
	if err != nil {
		// Im just too lazy to setup the err struct
		if err.Error() == "values are mutually exclusive" {
			ancli.PrintErr(fmt.Sprintf("flags: '%v' and '%v' are mutually exclusive, err: %v\n", shortFlag, longflag, err))
		} else {
			ancli.PrintErr(fmt.Sprintf("unexpected error: %v", err))
		}
		os.Exit(1)
	}
}
