// Package models holds the shared contracts between the command dispatch
// and the per-command runners.
package models

import "context"

// Runner is a fully configured command, ready to execute. Run blocks
// until the command completes or ctx cancels.
type Runner interface {
	Run(ctx context.Context) error
}
