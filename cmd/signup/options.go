package main

import (
	"fmt"
	"io"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"

	"signup/internal/form"
)

func optionsCommand(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Print the occupation and state lists served by the endpoint",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			opts, err := a.client.FetchOptions(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeOptionsJSON(cmd.OutOrStdout(), opts)
			}
			return writeOptionsText(cmd.OutOrStdout(), opts)
		}),
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func writeOptionsText(w io.Writer, opts form.Options) error {
	if _, err := fmt.Fprintf(w, "Occupations (%d):\n", len(opts.Occupations)); err != nil {
		return err
	}
	for _, o := range opts.Occupations {
		fmt.Fprintf(w, "  %s\n", o)
	}
	if _, err := fmt.Fprintf(w, "States (%d):\n", len(opts.States)); err != nil {
		return err
	}
	for _, s := range opts.States {
		fmt.Fprintf(w, "  %s\n", s.Name)
	}
	return nil
}

func writeOptionsJSON(w io.Writer, opts form.Options) error {
	var e jx.Encoder
	e.SetIdent(2)
	e.ObjStart()
	e.FieldStart("occupations")
	e.ArrStart()
	for _, o := range opts.Occupations {
		e.Str(string(o))
	}
	e.ArrEnd()
	e.FieldStart("states")
	e.ArrStart()
	for _, s := range opts.States {
		s.Encode(&e)
	}
	e.ArrEnd()
	e.ObjEnd()
	_, err := fmt.Fprintln(w, e.String())
	return err
}
