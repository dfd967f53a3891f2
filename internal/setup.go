package internal

import (
	"fmt"
	"os"
	"strings"

	"github.com/baalimago/cab/internal/models"
	"github.com/baalimago/cab/internal/utils"
	"github.com/baalimago/cab/pkg/bridge"
)

type Mode int

const (
	HELP Mode = iota
	COURSES
	FAQS
	ENROLLMENTS
	ENROLL
	HEALTH
	ASK
	VERSION
)

var defaultFlags = Configurations{
	URL:        "",
	AdminToken: "",
	TimeoutMS:  0,
	Limit:      0,
	Source:     "",
	PrintRaw:   false,
}

func getModeFromArgs(cmd string) (Mode, error) {
	switch cmd {
	case "courses", "c":
		return COURSES, nil
	case "faqs", "f":
		return FAQS, nil
	case "enrollments", "e":
		return ENROLLMENTS, nil
	case "enroll", "n":
		return ENROLL, nil
	case "health", "hp":
		return HEALTH, nil
	case "ask", "a":
		return ASK, nil
	case "help", "h":
		return HELP, nil
	case "version", "v":
		return VERSION, nil
	default:
		return HELP, fmt.Errorf("unknown command: '%s'", cmd)
	}
}

// loadBridgeConfig merges config sources in flags > env > file > default
// order and builds the client.
func loadBridgeConfig(flagSet Configurations) (*bridge.Client, error) {
	confDir, err := utils.GetCabConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to find config dir: %w", err)
	}
	bConf, err := utils.LoadConfigFromFile(confDir, "bridgeConfig.json", &bridge.DEFAULT)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if envToken := os.Getenv("CAB_ADMIN_TOKEN"); envToken != "" {
		bConf.AdminToken = envToken
	}
	applyFlagOverrides(&bConf, flagSet, defaultFlags)
	return bridge.New(bConf), nil
}

// Setup parses the args into a ready-to-run command.
func Setup(usage string, args []string) (models.Runner, error) {
	flagSet, args, err := parseFlags(defaultFlags, args)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		printUsage(usage)
		return nil, utils.ErrUserInitiatedExit
	}
	mode, err := getModeFromArgs(args[0])
	if err != nil {
		return nil, err
	}
	switch mode {
	case HELP:
		printUsage(usage)
		return nil, utils.ErrUserInitiatedExit
	case VERSION:
		return printVersion()
	}

	client, err := loadBridgeConfig(flagSet)
	if err != nil {
		return nil, fmt.Errorf("failed to setup bridge client: %w", err)
	}
	switch mode {
	case COURSES:
		return coursesRunner{client: client, raw: flagSet.PrintRaw}, nil
	case FAQS:
		return faqsRunner{client: client, raw: flagSet.PrintRaw}, nil
	case ENROLLMENTS:
		return enrollmentsRunner{
			client: client,
			raw:    flagSet.PrintRaw,
			limit:  flagSet.Limit,
			source: flagSet.Source,
		}, nil
	case ENROLL:
		return enrollRunner{client: client, payload: strings.Join(args[1:], " ")}, nil
	case HEALTH:
		return healthRunner{client: client}, nil
	case ASK:
		return askRunner{client: client, message: strings.Join(args[1:], " ")}, nil
	default:
		return nil, fmt.Errorf("unhandled mode: %v", mode)
	}
}

func printUsage(usage string) {
	fmt.Print(usage)
}
