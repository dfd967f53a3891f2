package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/baalimago/cab/pkg/bridge"
)

type coursesRunner struct {
	client *bridge.Client
	raw    bool
}

func (r coursesRunner) Run(ctx context.Context) error {
	if r.raw {
		courses, err := r.client.Courses(ctx)
		if err != nil {
			return err
		}
		return printJSON(courses)
	}
	fmt.Println(r.client.CoursesText(ctx))
	return nil
}

type faqsRunner struct {
	client *bridge.Client
	raw    bool
}

func (r faqsRunner) Run(ctx context.Context) error {
	if r.raw {
		faqs, err := r.client.FAQs(ctx)
		if err != nil {
			return err
		}
		return printJSON(faqs)
	}
	fmt.Println(r.client.FAQsText(ctx))
	return nil
}

type enrollmentsRunner struct {
	client *bridge.Client
	raw    bool
	limit  int
	source string
}

func (r enrollmentsRunner) Run(ctx context.Context) error {
	if r.raw {
		enrollments, err := r.client.RecentEnrollments(ctx, r.limit, r.source)
		if err != nil {
			return err
		}
		return printJSON(enrollments)
	}
	fmt.Println(r.client.EnrollmentsText(ctx, r.limit, r.source))
	return nil
}

type enrollRunner struct {
	client *bridge.Client
	// payload is the raw JSON enrollment document, passed through to the
	// backend unmodified
	payload string
}

func (r enrollRunner) Run(ctx context.Context) error {
	if r.payload == "" {
		return errors.New("enroll requires a JSON payload argument, example: cab enroll '{\"full_name\": \"Ada Lovelace\"}'")
	}
	var payload any
	if err := json.Unmarshal([]byte(r.payload), &payload); err != nil {
		return fmt.Errorf("failed to parse enrollment payload: %w", err)
	}
	receipt, err := r.client.Enroll(ctx, payload)
	if err != nil {
		return err
	}
	fmt.Println(receipt.String())
	return nil
}

type healthRunner struct {
	client *bridge.Client
}

func (r healthRunner) Run(ctx context.Context) error {
	status, err := r.client.Health(ctx)
	if err != nil {
		return fmt.Errorf("backend unhealthy: %w", err)
	}
	fmt.Println(status.String())
	return nil
}

type askRunner struct {
	client  *bridge.Client
	message string
}

func (r askRunner) Run(ctx context.Context) error {
	if r.message == "" {
		return errors.New("ask requires a message, example: cab ask 'which courses do you offer?'")
	}
	reply, err := r.client.Ask(ctx, r.message)
	if err != nil {
		return err
	}
	fmt.Println(reply)
	return nil
}

func printJSON(payload any) error {
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	fmt.Println(string(b))
	return nil
}
