package services

import (
	"context"
	"fmt"
	"io"
)

// Alerter shows a short notice to the user.
type Alerter interface {
	Alert(ctx context.Context, msg string)
}

type AlerterFunc func(ctx context.Context, msg string)

func (f AlerterFunc) Alert(ctx context.Context, msg string) { f(ctx, msg) }

// ConsoleAlerter writes alerts as a framed line.
type ConsoleAlerter struct {
	W io.Writer
}

func (a ConsoleAlerter) Alert(ctx context.Context, msg string) {
	fmt.Fprintf(a.W, "\n*** %s ***\n\n", msg)
}
