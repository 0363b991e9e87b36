// Package router decides which screen the client shows.
package router

import (
	"sync"

	"github.com/dmitrijs2005/vital/internal/models"
)

// Screen is one of Landing, Authenticating or Dashboard.
type Screen interface {
	screen()
	Name() string
}

type Landing struct{}

type Authenticating struct{}

// Dashboard carries the signed-in user.
type Dashboard struct {
	User models.User
}

func (Landing) screen()        {}
func (Authenticating) screen() {}
func (Dashboard) screen()      {}

func (Landing) Name() string        { return "landing" }
func (Authenticating) Name() string { return "authenticating" }
func (d Dashboard) Name() string    { return "dashboard:" + string(d.User.Role) }

// Resolve maps the entered flag and the optional session to a screen.
func Resolve(entered bool, user *models.User) Screen {
	switch {
	case !entered:
		return Landing{}
	case user == nil:
		return Authenticating{}
	default:
		return Dashboard{User: *user}
	}
}

// Router holds the current screen. Transitions that do not apply to the
// current screen are ignored and report false.
type Router struct {
	mu      sync.Mutex
	current Screen
}

func New() *Router {
	return &Router{current: Landing{}}
}

func (r *Router) Current() Screen {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Enter moves from Landing to Authenticating.
func (r *Router) Enter() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.current.(Landing); !ok {
		return false
	}
	r.current = Resolve(true, nil)
	return true
}

// SignIn moves from Authenticating to the user's dashboard.
func (r *Router) SignIn(user models.User) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.current.(Authenticating); !ok {
		return false
	}
	r.current = Resolve(true, &user)
	return true
}

// Logout drops the session and returns to Landing.
func (r *Router) Logout() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.current.(Dashboard); !ok {
		return false
	}
	r.current = Resolve(false, nil)
	return true
}

// Session returns the signed-in user, if any.
func (r *Router) Session() (models.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.current.(Dashboard)
	return d.User, ok
}
