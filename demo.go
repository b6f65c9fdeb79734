package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"termspin/internal/printer"
	"termspin/pkg/spinner"
)

func newDemoCommand(a *app) *cobra.Command {
	var (
		name  string
		color string
		timer bool
		all   bool
		pace  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through what a spinner can do",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("spinner") {
				a.cfg.Spinner.Name = name
			}
			if cmd.Flags().Changed("color") {
				a.cfg.Spinner.Color = color
			}
			if cmd.Flags().Changed("timer") {
				a.cfg.Spinner.Timer = timer
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			out := cmd.OutOrStdout()

			d := &demo{app: a, out: out, pace: pace}
			if all {
				return d.everySet(ctx)
			}
			return d.tour(ctx)
		},
	}
	cmd.Flags().StringVar(&name, "spinner", "", "Glyph set to use")
	cmd.Flags().StringVar(&color, "color", "", "Glyph color")
	cmd.Flags().BoolVar(&timer, "timer", false, "Show elapsed time")
	cmd.Flags().BoolVar(&all, "all", false, "Spin every glyph set in turn")
	cmd.Flags().DurationVar(&pace, "pace", time.Second, "How long each step lasts")
	return cmd
}

type demo struct {
	*app
	out  io.Writer
	pace time.Duration
}

// pause sleeps for the demo pace, cut short by ctx.
func (d *demo) pause(ctx context.Context) error {
	t := time.NewTimer(d.pace)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (d *demo) newSpinner() (*spinner.Spinner, error) {
	cfg, err := d.spinnerConfig(d.out)
	if err != nil {
		return nil, err
	}
	return spinner.New(spinner.InterruptSafe(cfg))
}

func (d *demo) section(title string) {
	fmt.Fprintln(d.out, printer.Heading(title))
}

// tour runs each step on a fresh spinner.
func (d *demo) tour(ctx context.Context) error {
	steps := []struct {
		title string
		run   func(context.Context, *spinner.Spinner) error
	}{
		{"basic", d.basic},
		{"colors", d.colors},
		{"placement", d.placement},
		{"timer", d.timer},
		{"ellipsis", d.ellipsis},
		{"write and hide", d.writeAndHide},
		{"finalizers", d.finalizers},
	}

	for _, step := range steps {
		d.section(step.title)
		sp, err := d.newSpinner()
		if err != nil {
			return err
		}
		d.log.Debug("demo step", zap.String("step", step.title), zap.String("spinner", sp.ID()))
		if err := sp.Do(func() error { return step.run(ctx, sp) }); err != nil {
			return err
		}
	}
	return nil
}

func (d *demo) basic(ctx context.Context, sp *spinner.Spinner) error {
	sp.SetText("Loading")
	if err := d.pause(ctx); err != nil {
		return err
	}
	return sp.OK("✔")
}

func (d *demo) colors(ctx context.Context, sp *spinner.Spinner) error {
	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan"} {
		if err := sp.SetColor(c); err != nil {
			return err
		}
		sp.SetText("Colored glyph: " + c)
		if err := d.pause(ctx); err != nil {
			return err
		}
	}
	if err := sp.Apply("bold", "on_blue"); err != nil {
		return err
	}
	sp.SetText("Bold glyph on blue")
	if err := d.pause(ctx); err != nil {
		return err
	}
	return sp.OK("✔")
}

func (d *demo) placement(ctx context.Context, sp *spinner.Spinner) error {
	if err := sp.SetSide(spinner.SideRight); err != nil {
		return err
	}
	sp.SetText("Glyph on the right")
	if err := d.pause(ctx); err != nil {
		return err
	}
	sp.SetReversal(!sp.Reversal())
	sp.SetText("Spinning the other way")
	if err := d.pause(ctx); err != nil {
		return err
	}
	return sp.OK("✔")
}

func (d *demo) timer(ctx context.Context, sp *spinner.Spinner) error {
	sp.SetTimer(true)
	sp.SetText("Timing")
	if err := d.pause(ctx); err != nil {
		return err
	}
	return sp.OK("✔")
}

func (d *demo) ellipsis(ctx context.Context, sp *spinner.Spinner) error {
	sp.SetText("A status line far too long for the terminal " + strings.Repeat("is cut short and marked ", 10))
	if err := d.pause(ctx); err != nil {
		return err
	}
	return sp.OK("✔")
}

func (d *demo) writeAndHide(ctx context.Context, sp *spinner.Spinner) error {
	sp.SetText("Working through steps")
	for i := range 3 {
		if err := d.pause(ctx); err != nil {
			return err
		}
		sp.Write(fmt.Sprintf("> step %d complete", i+1))
	}
	err := sp.Hidden(func() error {
		fmt.Fprintln(d.out, "The spinner is hidden while this line prints.")
		return nil
	})
	if err != nil {
		return err
	}
	if err := d.pause(ctx); err != nil {
		return err
	}
	return sp.OK("✔")
}

func (d *demo) finalizers(ctx context.Context, sp *spinner.Spinner) error {
	sp.SetText("This one fails")
	if err := d.pause(ctx); err != nil {
		return err
	}
	return sp.Fail("✘")
}

// everySet spins each catalog entry for one pace, labelled with its name.
func (d *demo) everySet(ctx context.Context) error {
	for _, name := range d.catalog.Names() {
		def, err := d.catalog.Lookup(name)
		if err != nil {
			return err
		}
		sp, err := d.newSpinner()
		if err != nil {
			return err
		}
		sp.SetDefinition(def)
		sp.SetText(name)
		if err := sp.Do(func() error { return d.pause(ctx) }); err != nil {
			return err
		}
	}
	return nil
}
