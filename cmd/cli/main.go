package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amirasaad/priceconv/infra/initializer"
	"github.com/amirasaad/priceconv/pkg/app"
	"github.com/amirasaad/priceconv/pkg/config"
	"github.com/amirasaad/priceconv/pkg/converter"
	"github.com/amirasaad/priceconv/pkg/widget"
	"golang.org/x/term"
)

const usage = `Usage: cli [command] [arguments]
Commands:
  interactive (default)                              interactive converter
  convert <amount> [ils-cad|cad-ils] [total|weight]  one-shot conversion at the live rate
  rate                                               fetch and print the live rate`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cmd := "interactive"
	if len(args) > 0 {
		cmd = args[0]
	}

	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	ctx := context.Background()
	switch cmd {
	case "interactive":
		return interactive(ctx, cfg)
	case "convert":
		if len(args) < 2 {
			fmt.Println(usage)
			return nil
		}
		a, err := newApp(cfg, os.Stderr)
		if err != nil {
			return err
		}
		return convertOnce(ctx, a.Widget, os.Stdout, args[1:])
	case "rate":
		a, err := newApp(cfg, os.Stderr)
		if err != nil {
			return err
		}
		return printRate(ctx, a.Widget, os.Stdout)
	case "help", "-h", "--help":
		fmt.Println(usage)
		return nil
	default:
		fmt.Println("Unknown command:", cmd)
		fmt.Println(usage)
		return nil
	}
}

func newApp(cfg *config.App, logOut io.Writer) (*app.App, error) {
	deps, err := initializer.InitializeDependencies(cfg, logOut)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	return app.New(deps, cfg)
}

// convertOnce fetches the live rate (falling back on failure) and prints one
// conversion.
func convertOnce(ctx context.Context, w *widget.Widget, out io.Writer, args []string) error {
	dir, mode := converter.Forward, converter.Total
	var err error
	if len(args) > 1 {
		if dir, err = converter.ParseDirection(args[1]); err != nil {
			return err
		}
	}
	if len(args) > 2 {
		if mode, err = converter.ParseMode(args[2]); err != nil {
			return err
		}
	}
	w.SetInput(args[0])
	w.SetMode(mode)
	if dir.IsReverse() {
		w.Flip()
	}
	_ = w.Refresh(ctx) //nolint:errcheck

	v := w.View()
	if v.Warning != "" {
		fmt.Fprintln(out, v.Warning)
	}
	result := v.ResultText
	if v.ResultUnit != "" {
		result += " " + v.ResultUnit
	}
	fmt.Fprintln(out, result)
	fmt.Fprintln(out, v.RateText)
	return nil
}

func printRate(ctx context.Context, w *widget.Widget, out io.Writer) error {
	err := w.Refresh(ctx)
	v := w.View()
	fmt.Fprintln(out, v.RateText)
	if err != nil {
		fmt.Fprintln(out, v.Warning)
		return nil
	}
	if v.RateDate != "" {
		fmt.Fprintf(out, "%s (%s)\n", v.Footer, v.RateDate)
	}
	return nil
}

func interactive(ctx context.Context, cfg *config.App) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return interactiveLines(ctx, cfg, os.Stdin, os.Stdout)
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, "> ")
	if width, height, err := term.GetSize(fd); err == nil {
		_ = t.SetSize(width, height) //nolint:errcheck
	}

	// Log lines would break the raw terminal; the panel shows fetch failures.
	a, err := newApp(cfg, io.Discard)
	if err != nil {
		return err
	}
	s := startSession(ctx, a, t)
	for {
		line, err := t.ReadLine()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if s.Handle(ctx, line) {
			return nil
		}
	}
}

func interactiveLines(ctx context.Context, cfg *config.App, in io.Reader, out io.Writer) error {
	a, err := newApp(cfg, os.Stderr)
	if err != nil {
		return err
	}
	s := startSession(ctx, a, out)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if s.Handle(ctx, strings.TrimSpace(scanner.Text())) {
			break
		}
	}
	a.Widget.Wait()
	return scanner.Err()
}

// startSession draws the first panel and starts the startup fetch.
func startSession(ctx context.Context, a *app.App, out io.Writer) *Session {
	s := NewSession(a.Widget, out)
	s.Subscribe(a.Deps.EventBus)
	_ = a.Widget.TriggerRefresh(ctx) //nolint:errcheck
	s.Draw()
	return s
}
