// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/example/hb/internal/ports/primary"
)

// HeartbeatAdapter is a thin adapter that translates CLI operations to
// HeartbeatService calls. It depends only on the HeartbeatService interface,
// enabling easy testing with mocks.
type HeartbeatAdapter struct {
	service primary.HeartbeatService
	out     io.Writer
}

// NewHeartbeatAdapter creates a new HeartbeatAdapter with the given service.
func NewHeartbeatAdapter(service primary.HeartbeatService, out io.Writer) *HeartbeatAdapter {
	return &HeartbeatAdapter{
		service: service,
		out:     out,
	}
}

// Add creates a new tracked heartbeat.
func (a *HeartbeatAdapter) Add(ctx context.Context, code, lastLine, neverLine string, leniencySeconds int64) error {
	h, err := a.service.Add(ctx, primary.AddHeartbeatRequest{
		Code:            code,
		LastLine:        lastLine,
		NeverLine:       neverLine,
		LeniencySeconds: leniencySeconds,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Added heartbeat %s\n", h.Code)
	if h.LeniencySeconds > 0 {
		fmt.Fprintf(a.out, "  Leniency: %ds\n", h.LeniencySeconds)
	}
	return nil
}

// Remove deletes a heartbeat by code.
func (a *HeartbeatAdapter) Remove(ctx context.Context, code string) error {
	if err := a.service.Remove(ctx, code); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Removed heartbeat %s\n", code)
	return nil
}

// Ping records now as the last time the action was done.
func (a *HeartbeatAdapter) Ping(ctx context.Context, code string, now time.Time) error {
	if err := a.service.Ping(ctx, code, now); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Pinged %s\n", code)
	return nil
}

// List prints all heartbeats as a plain table.
func (a *HeartbeatAdapter) List(ctx context.Context) error {
	beats, err := a.service.List(ctx)
	if err != nil {
		return err
	}

	if len(beats) == 0 {
		fmt.Fprintln(a.out, "No heartbeats tracked")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tLENIENCY\tLAST PING")
	fmt.Fprintln(w, "----\t--------\t---------")
	for _, h := range beats {
		leniency := "-"
		if h.LeniencySeconds > 0 {
			leniency = fmt.Sprintf("%ds", h.LeniencySeconds)
		}
		lastPing := "never"
		if h.Pinged() {
			lastPing = h.LastPing.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", h.Code, leniency, lastPing)
	}
	return w.Flush()
}

// Motd prints the heartbeat summary shown at terminal startup. Overdue and
// never-pinged heartbeats are highlighted in red, matching the advisory
// leniency semantics: nothing is filtered, only colored.
func (a *HeartbeatAdapter) Motd(ctx context.Context, now time.Time) error {
	statuses, err := a.service.Report(ctx, now)
	if err != nil {
		return err
	}

	if len(statuses) == 0 {
		return nil
	}

	heading := color.New(color.FgYellow)
	heading.Fprintln(a.out, "Heartbeats")
	heading.Fprintln(a.out, "==========")
	fmt.Fprintln(a.out)

	alert := color.New(color.FgRed)
	for _, s := range statuses {
		if s.Overdue || s.NeverPinged {
			fmt.Fprintf(a.out, "* %s\n", alert.Sprint(s.Line))
		} else {
			fmt.Fprintf(a.out, "* %s\n", s.Line)
		}
	}
	return nil
}

// Show prints the generic status line for one heartbeat.
func (a *HeartbeatAdapter) Show(ctx context.Context, code string, now time.Time) error {
	line, err := a.service.Status(ctx, code, now)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, line)
	return nil
}

// Export writes all heartbeats to a snapshot file.
func (a *HeartbeatAdapter) Export(ctx context.Context, path string) error {
	n, err := a.service.Export(ctx, path)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Exported %d heartbeats to %s\n", n, path)
	return nil
}

// Import loads heartbeats from a snapshot file.
func (a *HeartbeatAdapter) Import(ctx context.Context, path string, replace bool) error {
	n, err := a.service.Import(ctx, path, replace)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Imported %d heartbeats from %s\n", n, path)
	return nil
}
