// Package prompt is a line-oriented frontend for the sign-up form, for
// terminals where the full-screen form is unavailable.
package prompt

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"signup/internal/api"
	"signup/internal/form"
	"signup/internal/logger"
)

// Run asks for each field in turn, validates the selections and submits
// once. Validation failures are reported through d and returned without a
// request being sent.
func Run(ctx context.Context, d Driver, opts form.Options, client api.Client) (form.Account, error) {
	fields, err := ask(ctx, d, opts)
	if err != nil {
		return form.Account{}, err
	}

	if err := fields.Validate(); err != nil {
		logger.Debug(ctx, "submit rejected", zap.Error(err))
		if infoErr := d.Info(ctx, form.Notice(err)); infoErr != nil {
			return form.Account{}, infoErr
		}
		return form.Account{}, err
	}

	acc, err := client.Submit(ctx, fields.Payload())
	if err != nil {
		return form.Account{}, errors.Wrap(err, "sign up")
	}
	if err := d.Info(ctx, fmt.Sprintf("Welcome %s! Your account has been created 🙌", acc.Name)); err != nil {
		return acc, err
	}
	return acc, nil
}

func ask(ctx context.Context, d Driver, opts form.Options) (form.Fields, error) {
	var (
		f   form.Fields
		err error
	)
	if f.Name, err = d.Input(ctx, "Name"); err != nil {
		return form.Fields{}, err
	}
	if f.Email, err = d.Input(ctx, "Email"); err != nil {
		return form.Fields{}, err
	}
	if f.Password, err = d.Password(ctx, "Password"); err != nil {
		return form.Fields{}, err
	}

	idx, err := d.Select(ctx, "Choose your occupation", opts.OccupationLabels())
	if err != nil {
		return form.Fields{}, err
	}
	if idx >= 0 && idx < len(opts.Occupations) {
		f.Occupation = opts.Occupations[idx]
	}

	idx, err = d.Select(ctx, "Choose your state", opts.StateLabels())
	if err != nil {
		return form.Fields{}, err
	}
	if idx >= 0 && idx < len(opts.States) {
		f.State = opts.States[idx]
	}
	return f, nil
}
