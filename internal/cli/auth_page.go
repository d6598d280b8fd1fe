package cli

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"sync"
	"time"

	"github.com/dmitrijs2005/quotejournal/internal/client"
	"github.com/dmitrijs2005/quotejournal/internal/logging"
	"github.com/dmitrijs2005/quotejournal/internal/services"
)

// AuthMode selects which sub-form of the auth view is active.
type AuthMode string

const (
	ModeLogin    AuthMode = "login"
	ModeRegister AuthMode = "register"
)

// fallbackErrorMessage is shown when a failure carries no server message.
const fallbackErrorMessage = "Something went wrong"

// registerRevertDelay is how long the register form shows its success
// message before reverting to login mode.
const registerRevertDelay = 2 * time.Second

// AuthPage is the controller of the auth view: one form toggling between
// login and register sub-modes. A successful login navigates to the
// quotes view; a successful registration shows the server's confirmation
// message and reverts to login mode after a fixed delay; registration
// never authenticates by itself.
//
// The revert fires on a timer goroutine, so mode and the transient
// messages are guarded by a mutex.
type AuthPage struct {
	auth     services.AuthService
	logger   logging.Logger
	navigate func(ctx context.Context, target string) error

	mu         sync.Mutex
	mode       AuthMode
	errMsg     string
	successMsg string

	revertDelay time.Duration
	// scheduleRevert is a test seam around time.AfterFunc.
	scheduleRevert func(d time.Duration, f func())
}

func NewAuthPage(auth services.AuthService, logger logging.Logger, navigate func(ctx context.Context, target string) error) *AuthPage {
	return &AuthPage{
		auth:        auth,
		logger:      logger.With("page", "auth"),
		navigate:    navigate,
		mode:        ModeLogin,
		revertDelay: registerRevertDelay,
		scheduleRevert: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

// Mount resets transient messages; the form itself is rendered on demand.
func (p *AuthPage) Mount(ctx context.Context, _ url.Values) error {
	p.mu.Lock()
	p.errMsg, p.successMsg = "", ""
	p.mu.Unlock()
	return nil
}

// Mode returns the active sub-mode.
func (p *AuthPage) Mode() AuthMode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

// SetMode switches the form to the given sub-mode and clears any
// pending messages.
func (p *AuthPage) SetMode(mode AuthMode) {
	p.mu.Lock()
	p.mode = mode
	p.errMsg, p.successMsg = "", ""
	p.mu.Unlock()
}

// ToggleMode switches between the login and register sub-modes.
func (p *AuthPage) ToggleMode() {
	p.mu.Lock()
	if p.mode == ModeLogin {
		p.mode = ModeRegister
	} else {
		p.mode = ModeLogin
	}
	p.errMsg, p.successMsg = "", ""
	p.mu.Unlock()
}

// SubmitLogin exchanges credentials for a token. On success the view
// navigates to the quotes route; on failure the server's message (or the
// generic fallback) is kept for rendering and the error returned.
func (p *AuthPage) SubmitLogin(ctx context.Context, email string, password []byte) error {
	p.mu.Lock()
	p.errMsg, p.successMsg = "", ""
	p.mu.Unlock()

	if err := p.auth.Login(ctx, email, password); err != nil {
		p.mu.Lock()
		p.errMsg = errorMessage(err)
		p.mu.Unlock()
		return err
	}
	return p.navigate(ctx, routeQuotes)
}

// SubmitRegister creates an account. On success the server's confirmation
// message is shown and the form reverts to login mode after the fixed
// delay. No token is stored.
func (p *AuthPage) SubmitRegister(ctx context.Context, name, email string, password []byte) error {
	p.mu.Lock()
	p.errMsg, p.successMsg = "", ""
	p.mu.Unlock()

	msg, err := p.auth.Register(ctx, name, email, password)
	if err != nil {
		p.mu.Lock()
		p.errMsg = errorMessage(err)
		p.mu.Unlock()
		return err
	}

	p.mu.Lock()
	p.successMsg = msg
	p.mu.Unlock()
	p.scheduleRevert(p.revertDelay, func() {
		p.mu.Lock()
		p.mode = ModeLogin
		p.mu.Unlock()
	})
	return nil
}

// ErrorMessage returns the inline error of the last failed submission.
func (p *AuthPage) ErrorMessage() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}

// SuccessMessage returns the confirmation of the last registration.
func (p *AuthPage) SuccessMessage() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.successMsg
}

// Render writes the form header and any pending messages.
func (p *AuthPage) Render(w io.Writer) {
	p.mu.Lock()
	mode, errMsg, successMsg := p.mode, p.errMsg, p.successMsg
	p.mu.Unlock()

	if mode == ModeRegister {
		fmt.Fprintln(w, "--- Register ---")
	} else {
		fmt.Fprintln(w, "--- Login ---")
	}
	if errMsg != "" {
		fmt.Fprintf(w, "Error: %s\n", errMsg)
	}
	if successMsg != "" {
		fmt.Fprintf(w, "%s\n", successMsg)
	}
}

// errorMessage prefers the server-provided text and falls back to a
// generic message when there is none.
func errorMessage(err error) string {
	if msg := client.ServerMessage(err); msg != "" {
		return msg
	}
	return fallbackErrorMessage
}
