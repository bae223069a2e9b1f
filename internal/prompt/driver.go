package prompt

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/go-faster/errors"
)

// ErrInterrupted is returned when the user aborts a prompt (Ctrl+C).
var ErrInterrupted = errors.New("prompt interrupted")

// Driver asks one question at a time. The survey implementation talks to the
// terminal; tests substitute a scripted driver.
type Driver interface {
	Input(ctx context.Context, message string) (string, error)
	Password(ctx context.Context, message string) (string, error)
	// Select returns the index of the chosen option.
	Select(ctx context.Context, message string, options []string) (int, error)
	Info(ctx context.Context, message string) error
}

// SurveyDriver implements Driver with survey/v2.
type SurveyDriver struct {
	out  io.Writer
	opts []survey.AskOpt
}

// Ensure SurveyDriver implements Driver.
var _ Driver = (*SurveyDriver)(nil)

// NewSurveyDriver returns a driver on the process terminal. opts are passed
// to every survey.AskOne call (e.g. survey.WithStdio).
func NewSurveyDriver(opts ...survey.AskOpt) *SurveyDriver {
	return &SurveyDriver{out: os.Stdout, opts: opts}
}

// Input implements Driver.
func (d *SurveyDriver) Input(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	if err := survey.AskOne(&survey.Input{Message: message}, &out, d.opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

// Password implements Driver.
func (d *SurveyDriver) Password(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	if err := survey.AskOne(&survey.Password{Message: message}, &out, d.opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

// Select implements Driver. With no options nothing can be chosen and it
// returns -1, leaving the selection empty for validation to report.
func (d *SurveyDriver) Select(ctx context.Context, message string, options []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(options) == 0 {
		return -1, nil
	}
	var idx int
	p := &survey.Select{Message: message, Options: options, PageSize: 12}
	if err := survey.AskOne(p, &idx, d.opts...); err != nil {
		return 0, translateSurveyErr(err)
	}
	return idx, nil
}

// Info implements Driver.
func (d *SurveyDriver) Info(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, message)
	return err
}

func translateSurveyErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return err
}
