package auth

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/vital/internal/logging"
)

// Notifier delivers a code to its destination. Delivery is best effort.
type Notifier interface {
	Notify(ctx context.Context, destination, code string)
}

type NotifierFunc func(ctx context.Context, destination, code string)

func (f NotifierFunc) Notify(ctx context.Context, destination, code string) {
	f(ctx, destination, code)
}

// channelLabel names the simulated delivery channel for a destination.
func channelLabel(destination string) string {
	if strings.Contains(destination, "@") {
		return "EMAIL"
	}
	return "SMS"
}

// ConsoleNotifier prints a simulated e-mail or SMS banner.
type ConsoleNotifier struct {
	W io.Writer
}

func (n ConsoleNotifier) Notify(ctx context.Context, destination, code string) {
	fmt.Fprintf(n.W, "\nVITAL SECURITY SIMULATION\n\n[FAKE %s RECEIVED]\n\nYour Verification Code is: %s\n\nPlease enter this code to proceed.\n\n",
		channelLabel(destination), code)
}

// LogNotifier records the code in the structured log.
type LogNotifier struct {
	Log logging.Logger
}

func (n LogNotifier) Notify(ctx context.Context, destination, code string) {
	n.Log.Debug(ctx, "verification code issued",
		"destination", destination,
		"channel", strings.ToLower(channelLabel(destination)),
		"code", code)
}

// MultiNotifier fans a code out to several notifiers.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(ctx context.Context, destination, code string) {
	for _, n := range m {
		n.Notify(ctx, destination, code)
	}
}
