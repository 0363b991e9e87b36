package auth

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/vital/internal/logging"
	"github.com/dmitrijs2005/vital/internal/models"
)

const (
	FederatedUserName  = "Google User"
	DefaultStepTimeout = 10 * time.Second
)

// Delays are the simulated latencies of the asynchronous steps.
type Delays struct {
	Submit    time.Duration
	Verify    time.Duration
	Resend    time.Duration
	Federated time.Duration
}

func DefaultDelays() Delays {
	return Delays{
		Submit:    1500 * time.Millisecond,
		Verify:    2 * time.Second,
		Resend:    time.Second,
		Federated: 2 * time.Second,
	}
}

type Option func(*Machine)

func WithDelays(d Delays) Option {
	return func(m *Machine) { m.delays = d }
}

func WithStepTimeout(d time.Duration) Option {
	return func(m *Machine) {
		if d > 0 {
			m.stepTimeout = d
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.log = l
		}
	}
}

// Machine drives one sign-in flow. It is safe for concurrent use; the lock
// is not held while a step waits out its latency.
type Machine struct {
	mu          sync.Mutex
	issuer      CodeIssuer
	delays      Delays
	stepTimeout time.Duration
	log         logging.Logger

	step        Step
	mode        Mode
	method      Method
	draft       Draft
	destination string
	candidate   string
	err         error
	pending     int
	// gen changes whenever the flow is reset so in-flight steps can tell
	// their result is stale.
	gen uint64
}

func NewMachine(issuer CodeIssuer, opts ...Option) *Machine {
	m := &Machine{
		issuer:      issuer,
		delays:      DefaultDelays(),
		stepTimeout: DefaultStepTimeout,
		log:         logging.Nop(),
		step:        StepCredentials,
		mode:        ModeSignIn,
		method:      MethodEmail,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return State{
		Step:        m.step,
		Mode:        m.mode,
		Method:      m.method,
		Loading:     m.pending > 0,
		Err:         m.err,
		Destination: m.destination,
		Candidate:   m.candidate,
	}
}

// SetMode switches between sign-in and sign-up and clears the active error.
func (m *Machine) SetMode(mode Mode) error {
	mode, err := ParseMode(string(mode))
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.step != StepCredentials {
		return ErrWrongStep
	}
	m.mode = mode
	m.err = nil
	return nil
}

func (m *Machine) SetMethod(method Method) error {
	method, err := ParseMethod(string(method))
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.step != StepCredentials {
		return ErrWrongStep
	}
	m.method = method
	return nil
}

// SubmitCredentials validates the draft and, after the submit latency, issues
// a code to the identifier and moves to StepVerification.
func (m *Machine) SubmitCredentials(ctx context.Context, d Draft) error {
	m.mu.Lock()
	if m.step != StepCredentials {
		m.mu.Unlock()
		return ErrWrongStep
	}
	m.err = nil
	if err := validateCredentials(m.mode, m.method, d); err != nil {
		m.err = err
		m.mu.Unlock()
		m.log.Info(ctx, "credentials rejected", "reason", err.Error())
		return err
	}
	gen := m.begin()
	m.mu.Unlock()

	err := m.runStep(ctx, m.delays.Submit, func(ctx context.Context) error {
		return m.issuer.Issue(ctx, d.Identifier)
	})

	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending--

	if err != nil {
		m.log.Warn(ctx, "credential step failed", "error", err)
		return err
	}
	if gen != m.gen {
		return ErrAborted
	}

	m.draft = d
	m.destination = d.Identifier
	m.candidate = ""
	m.step = StepVerification
	m.log.Debug(ctx, "code sent", "method", string(m.method))
	return nil
}

// VerifyCode checks candidate against the latest issued code. On a match it
// waits out the verify latency and returns the session user, resetting the
// machine for the next flow. A mismatch keeps the code valid.
func (m *Machine) VerifyCode(ctx context.Context, candidate string) (models.User, error) {
	m.mu.Lock()
	if m.step != StepVerification {
		m.mu.Unlock()
		return models.User{}, ErrWrongStep
	}
	m.err = nil
	m.candidate = candidate
	if !validOtp(candidate) {
		m.err = ErrInvalidOtpFormat
		m.mu.Unlock()
		return models.User{}, ErrInvalidOtpFormat
	}
	dest := m.destination
	gen := m.begin()
	m.mu.Unlock()

	var match bool
	err := m.runStep(ctx, 0, func(ctx context.Context) error {
		var err error
		match, err = m.issuer.Verify(ctx, dest, candidate)
		return err
	})
	if err == nil && match {
		err = m.runStep(ctx, m.delays.Verify, nil)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending--

	if err != nil {
		m.log.Warn(ctx, "verification step failed", "error", err)
		return models.User{}, err
	}
	if gen != m.gen {
		return models.User{}, ErrAborted
	}
	if !match {
		m.err = ErrOtpMismatch
		m.log.Info(ctx, "code mismatch")
		return models.User{}, ErrOtpMismatch
	}

	role := m.draft.Role
	if role == "" {
		role = models.RoleDonor
	}
	user := models.User{Name: deriveName(m.method, m.draft), Role: role}

	if err := m.issuer.Revoke(ctx, dest); err != nil {
		m.log.Warn(ctx, "revoke used code", "error", err)
	}
	m.clear()
	m.log.Info(ctx, "user verified", "role", string(role))
	return user, nil
}

// ResendCode issues a fresh code to the same destination, invalidating the
// previous one.
func (m *Machine) ResendCode(ctx context.Context) error {
	m.mu.Lock()
	if m.step != StepVerification {
		m.mu.Unlock()
		return ErrWrongStep
	}
	m.candidate = ""
	m.err = nil
	dest := m.destination
	gen := m.begin()
	m.mu.Unlock()

	err := m.runStep(ctx, m.delays.Resend, func(ctx context.Context) error {
		return m.issuer.Issue(ctx, dest)
	})

	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending--

	if err != nil {
		m.log.Warn(ctx, "resend failed", "error", err)
		return err
	}
	if gen != m.gen {
		return ErrAborted
	}
	return nil
}

// FederatedSignIn skips credentials and codes and returns the generic
// federated user after its latency.
func (m *Machine) FederatedSignIn(ctx context.Context, role models.Role) (models.User, error) {
	m.mu.Lock()
	if m.step != StepCredentials {
		m.mu.Unlock()
		return models.User{}, ErrWrongStep
	}
	m.err = nil
	gen := m.begin()
	m.mu.Unlock()

	err := m.runStep(ctx, m.delays.Federated, nil)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending--

	if err != nil {
		return models.User{}, err
	}
	if gen != m.gen {
		return models.User{}, ErrAborted
	}

	if role == "" {
		role = models.RoleDonor
	}
	m.clear()
	return models.User{Name: FederatedUserName, Role: role}, nil
}

// Reset returns to StepCredentials, dropping the draft, the candidate, the
// active error and the issued code. Mode and method are kept.
func (m *Machine) Reset(ctx context.Context) error {
	m.mu.Lock()
	dest := m.destination
	m.clear()
	m.mu.Unlock()

	if dest == "" {
		return nil
	}
	return m.issuer.Revoke(ctx, dest)
}

// begin must be called with the lock held.
func (m *Machine) begin() uint64 {
	m.pending++
	return m.gen
}

// clear must be called with the lock held.
func (m *Machine) clear() {
	m.step = StepCredentials
	m.draft = Draft{}
	m.destination = ""
	m.candidate = ""
	m.err = nil
	m.gen++
}

// runStep waits delay and then runs fn, both bounded by the step timeout.
func (m *Machine) runStep(ctx context.Context, delay time.Duration, fn func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, m.stepTimeout)
	defer cancel()

	if delay > 0 {
		t := time.NewTimer(delay)
		defer t.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}

	if fn == nil {
		return ctx.Err()
	}
	return fn(ctx)
}
