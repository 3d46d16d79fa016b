package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/amirasaad/priceconv/pkg/converter"
	"github.com/amirasaad/priceconv/pkg/domain"
	"github.com/amirasaad/priceconv/pkg/domain/events"
	"github.com/amirasaad/priceconv/pkg/eventbus"
	"github.com/amirasaad/priceconv/pkg/widget"
	"github.com/fatih/color"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	labelColor   = color.New(color.FgHiBlack)
	resultColor  = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

const helpText = `Commands:
  <number>     set the price
  t, total     total price mode
  w, weight    per-weight price mode
  f, flip      switch direction
  c, clear     clear the price
  r, refresh   fetch the live rate
  ?, help      show this help
  q, quit      exit`

// Session drives a widget from text commands and draws its panel to out.
type Session struct {
	w   *widget.Widget
	out io.Writer
	mu  sync.Mutex
}

func NewSession(w *widget.Widget, out io.Writer) *Session {
	return &Session{w: w, out: out}
}

// Subscribe redraws the panel whenever a background fetch finishes.
func (s *Session) Subscribe(bus eventbus.Bus) {
	redraw := func(ctx context.Context, e events.Event) error {
		s.Draw()
		return nil
	}
	bus.Register(events.EventTypeRateUpdated.String(), redraw)
	bus.Register(events.EventTypeRateRefreshFailed.String(), redraw)
}

// Handle runs one command line. It returns true when the session should end.
func (s *Session) Handle(ctx context.Context, line string) bool {
	cmd := strings.ToLower(strings.TrimSpace(line))
	switch cmd {
	case "":
	case "q", "quit", "exit":
		return true
	case "?", "h", "help":
		s.println(helpText)
		return false
	case "t", "total":
		s.w.SetMode(converter.Total)
	case "w", "weight":
		s.w.SetMode(converter.PerWeight)
	case "f", "flip":
		s.w.Flip()
	case "c", "clear":
		s.w.Clear()
	case "r", "refresh":
		if err := s.w.TriggerRefresh(ctx); err != nil {
			if errors.Is(err, domain.ErrRefreshInProgress) {
				s.println(warningColor.Sprint("Refresh already in progress"))
				return false
			}
			s.println(errorColor.Sprint(err))
			return false
		}
	default:
		if !looksNumeric(cmd) {
			s.println(errorColor.Sprintf("Unknown command %q, type ? for help", cmd))
			return false
		}
		s.w.SetInput(strings.TrimSpace(line))
	}
	s.Draw()
	return false
}

// Draw prints the panel for the current state.
func (s *Session) Draw() {
	v := s.w.View()

	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out)
	titleColor.Fprintf(s.out, "%s  %s\n", v.Title, v.PairLabel)
	fmt.Fprintf(s.out, "%s %s\n", labelColor.Sprint(v.InputLabel+":"), inputText(v))
	fmt.Fprintf(s.out, "%s %s", labelColor.Sprint(v.ResultLabel+":"), resultColor.Sprint(v.ResultText))
	if v.ResultUnit != "" {
		fmt.Fprintf(s.out, " %s", v.ResultUnit)
	}
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, labelColor.Sprint(v.RateText))
	if v.WeightFactorText != "" {
		fmt.Fprintln(s.out, labelColor.Sprint(v.WeightFactorText))
	}
	fmt.Fprintf(s.out, "[f] %s  [w/t] mode: %s  [r] refresh\n", v.SwitchLabel, v.Mode)
	if v.Loading {
		warningColor.Fprintln(s.out, "Updating rate...")
	}
	if v.Warning != "" {
		warningColor.Fprintln(s.out, v.Warning)
	}
	fmt.Fprintln(s.out, labelColor.Sprint(v.Footer))
}

func (s *Session) println(a ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, a...)
}

func inputText(v widget.View) string {
	if v.Input == "" {
		return labelColor.Sprint(v.Placeholder)
	}
	return v.Input
}

// looksNumeric reports whether s starts like a number, so that "12abc" is
// accepted as input while words are treated as commands.
func looksNumeric(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return s != "" && (s[0] == '.' || (s[0] >= '0' && s[0] <= '9'))
}
