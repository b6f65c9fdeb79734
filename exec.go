package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"termspin/internal/printer"
	"termspin/pkg/spinner"
)

func newExecCommand(a *app) *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "exec [flags] -- command [args...]",
		Short: "Run a command under a spinner",
		Long: strings.TrimSpace(`
Runs the command with a spinner on stdout. Each line the command prints is
shown above the spinner; stderr lines are tagged. The spinner finishes with
a check mark when the command succeeds and a cross otherwise, and termspin
exits with the command's status.
`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if text == "" {
				text = a.cfg.Spinner.Text
			}
			if text == "" {
				text = strings.Join(args, " ")
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return a.runCommand(ctx, cmd.OutOrStdout(), text, args)
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "Spinner text (defaults to the command line)")
	return cmd
}

// runCommand runs args under a spinner writing to w. SIGINT stops the child
// and fails the spinner instead of killing termspin outright.
func (a *app) runCommand(ctx context.Context, w io.Writer, text string, args []string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg, err := a.spinnerConfig(w)
	if err != nil {
		return err
	}
	cfg.Text = text
	cfg.Signals = spinner.SignalMap{
		os.Interrupt: func(sig os.Signal, sp *spinner.Spinner) {
			a.log.Info("interrupted, stopping command", zap.Stringer("signal", sig))
			cancel()
		},
	}

	sp, err := spinner.New(cfg)
	if err != nil {
		return err
	}

	c := exec.CommandContext(ctx, args[0], args[1:]...)
	stdout, err := c.StdoutPipe()
	if err != nil {
		return errors.Wrap(err, "failed to open stdout pipe")
	}
	stderr, err := c.StderrPipe()
	if err != nil {
		return errors.Wrap(err, "failed to open stderr pipe")
	}

	if err := sp.Start(); err != nil {
		return err
	}
	if err := c.Start(); err != nil {
		_ = sp.Fail("✘")
		return errors.Wrapf(err, "failed to start %s", args[0])
	}
	a.log.Debug("command started", zap.Strings("args", args), zap.Int("pid", c.Process.Pid))

	// Both pipes must be drained before Wait closes them.
	var g errgroup.Group
	g.Go(func() error { return forwardLines(sp, printer.SourceStdout, stdout) })
	g.Go(func() error { return forwardLines(sp, printer.SourceStderr, stderr) })
	readErr := g.Wait()
	runErr := c.Wait()

	if readErr != nil {
		a.log.Warn("command output truncated", zap.Error(readErr))
	}

	if runErr != nil {
		if err := sp.Fail("✘"); err != nil {
			return err
		}
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) && exitErr.ExitCode() > 0 {
			return &exitCodeError{code: exitErr.ExitCode()}
		}
		return errors.Wrapf(runErr, "%s failed", args[0])
	}
	return sp.OK("✔")
}

// forwardLines writes each line of r above the spinner.
func forwardLines(sp *spinner.Spinner, src printer.Source, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		sp.Write(printer.Line(src, scanner.Text()))
	}
	return scanner.Err()
}
