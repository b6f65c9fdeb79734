package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"termspin/internal/table"
)

func newListCommand(a *app) *cobra.Command {
	var names bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available glyph sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if names {
				for _, name := range a.catalog.Names() {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			t := table.New(
				table.Column{Header: "Name"},
				table.Column{Header: "Interval", Align: table.AlignRight},
				table.Column{Header: "Frames", MaxWidth: 40},
			)
			for _, name := range a.catalog.Names() {
				def, err := a.catalog.Lookup(name)
				if err != nil {
					return err
				}
				t.AddRow(name, strconv.FormatInt(def.Interval.Milliseconds(), 10)+"ms", strings.Join(def.Frames, " "))
			}

			opts := table.DefaultPrintOptions()
			opts.Writer = out
			opts.HighlightColumn = 0
			t.Print(opts)
			return nil
		},
	}
	cmd.Flags().BoolVar(&names, "names", false, "Print only the glyph set names")
	return cmd
}
