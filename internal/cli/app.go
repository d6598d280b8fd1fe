package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/quotejournal/internal/client"
	"github.com/dmitrijs2005/quotejournal/internal/config"
	"github.com/dmitrijs2005/quotejournal/internal/logging"
	"github.com/dmitrijs2005/quotejournal/internal/models"
	"github.com/dmitrijs2005/quotejournal/internal/services"
	"github.com/dmitrijs2005/quotejournal/internal/token"
)

// getSimpleText, getPassword and confirmFn are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getYesNo      = GetYesNo
	confirmFn     = Confirm
)

// App owns the views, the navigation state, and the services behind them.
type App struct {
	config *config.Config
	logger logging.Logger
	auth   services.AuthService
	api    client.Client

	reader *bufio.Reader
	out    io.Writer

	routeTable map[string]routeEntry
	route      Route

	authPage  *AuthPage
	quotes    *QuotesPage
	dashboard *DashboardPage
}

// NewApp wires the file-backed token store, the HTTP gateway, and the
// auth service into an App ready to Run.
func NewApp(cfg *config.Config, logger logging.Logger) *App {
	store := token.NewFileStore(cfg.TokenFile)
	api := client.NewHTTPClient(cfg.APIBaseURL, store)
	auth := services.NewAuthService(api, store)
	return newApp(cfg, logger, api, auth, os.Stdin, os.Stdout)
}

// newApp is the wiring shared by NewApp and the tests, which inject
// fakes for the gateway and auth service.
func newApp(cfg *config.Config, logger logging.Logger, api client.Client, auth services.AuthService, in io.Reader, out io.Writer) *App {
	a := &App{
		config: cfg,
		logger: logger,
		auth:   auth,
		api:    api,
		reader: bufio.NewReader(in),
		out:    out,
	}

	a.authPage = NewAuthPage(auth, logger, a.Navigate)
	a.quotes = NewQuotesPage(api, logger)
	a.dashboard = NewDashboardPage(api, logger)

	a.routeTable = map[string]routeEntry{
		routeRoot:   {redirect: routeQuotes},
		routeAuth:   {mount: a.authPage.Mount},
		routeQuotes: {guard: RequireAuth(auth, routeAuth), mount: a.quotes.Mount},
		routeDashboard: {
			guard: RequireAdmin(auth, routeAuth, routeQuotes),
			mount: a.dashboard.Mount,
		},
	}
	return a
}

// Run starts at the root route (which redirects through the guards) and
// hands control to the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Quote Journal CLI (type 'help' for commands)")

	if err := a.Navigate(ctx, routeRoot); err != nil {
		a.logger.Error(ctx, "initial navigation failed", "error", err)
	}
	a.render()

	runREPL(ctx, a, func() string { return a.status(ctx) }, bufio.NewScanner(a.reader))
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated(context.Background())
}

func (a *App) status(ctx context.Context) string {
	if !a.auth.IsAuthenticated(ctx) {
		return "(anonymous)"
	}
	if role, ok := a.auth.Role(ctx); ok {
		return "(" + strings.ToLower(role) + ")"
	}
	return "(signed in)"
}

// render writes the view of the current route.
func (a *App) render() {
	switch a.route.Path {
	case routeAuth:
		a.authPage.Render(a.out)
	case routeQuotes:
		a.quotes.Render(a.out)
	case routeDashboard:
		a.dashboard.Render(a.out)
	}
}

// alert surfaces a user-initiated mutation failure prominently, the
// terminal stand-in for a blocking alert dialog.
func (a *App) alert(msg string) {
	fmt.Fprintf(a.out, "ALERT: %s\n", msg)
}

// ---- commands ----

// Login prompts for credentials and authenticates. On success navigation
// lands on the quotes view; on failure the inline message is shown.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	if err := a.authPage.SubmitLogin(ctx, email, password); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", a.authPage.ErrorMessage())
		return err
	}

	a.render()
	return nil
}

// Register prompts for the registration fields and creates an account.
// A successful registration does not log the user in.
func (a *App) Register(ctx context.Context) error {
	a.authPage.SetMode(ModeRegister)

	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	if err := a.authPage.SubmitRegister(ctx, name, email, password); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", a.authPage.ErrorMessage())
		return err
	}

	fmt.Fprintln(a.out, a.authPage.SuccessMessage())
	return nil
}

// Logout clears the stored token and returns to the auth view. No server
// call is made.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	if err := a.Navigate(ctx, routeAuth); err != nil {
		return err
	}
	a.render()
	return nil
}

// OpenQuotes navigates to the quotes view on its default tab.
func (a *App) OpenQuotes(ctx context.Context) error {
	if err := a.Navigate(ctx, routeQuotes); err != nil {
		return err
	}
	a.render()
	return nil
}

// SwitchTab updates the route's tab query parameter, which remounts the
// quotes view and triggers exactly one fetch of the tab's endpoint.
func (a *App) SwitchTab(ctx context.Context, name string) error {
	tab, ok := ParseTab(name)
	if !ok {
		fmt.Fprintln(a.out, "Usage: tab <all|public|private>")
		return nil
	}

	if err := a.Navigate(ctx, Route{Path: routeQuotes, Query: tab.Query()}.String()); err != nil {
		return err
	}
	a.render()
	return nil
}

// Search updates the client-side free-text filter. No network call.
func (a *App) Search(ctx context.Context, term string) error {
	a.quotes.SetSearch(term)
	a.render()
	return nil
}

// FilterTag updates the client-side tag filter. No network call.
func (a *App) FilterTag(ctx context.Context, tag string) error {
	if err := a.quotes.SetTagFilter(tag); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	a.render()
	return nil
}

// AddQuote prompts for the new-quote form and submits it. Content is
// required; the tag is optional and must come from the known set.
func (a *App) AddQuote(ctx context.Context) error {
	content, err := getSimpleText(a.reader, "What's on your mind?", a.out)
	if err != nil {
		return err
	}
	tag, err := getSimpleText(a.reader, "Tag (optional, one of "+strings.Join(models.AvailableTags, ", ")+")", a.out)
	if err != nil {
		return err
	}
	if tag != "" && !models.IsValidTag(tag) {
		fmt.Fprintf(a.out, "Unknown tag %q\n", tag)
		return nil
	}
	isPublic, err := getYesNo(a.reader, "Make it public?", true, a.out)
	if err != nil {
		return err
	}

	a.quotes.SetForm(content, tag, isPublic)
	if err := a.quotes.Submit(ctx); err != nil {
		a.alert("Failed to create quote: " + errorMessage(err))
		return err
	}

	a.render()
	return nil
}

// DeleteQuote confirms, then deletes. Declining issues no request.
func (a *App) DeleteQuote(ctx context.Context, id string) error {
	confirmed := confirmFn(a.reader, "Delete this quote?", a.out)
	if err := a.quotes.Delete(ctx, id, confirmed); err != nil {
		a.alert("Failed to delete quote: " + errorMessage(err))
		return err
	}
	if confirmed {
		a.render()
	}
	return nil
}

// OpenDashboard navigates to the admin dashboard; non-admins are
// redirected away by the guard.
func (a *App) OpenDashboard(ctx context.Context) error {
	if err := a.Navigate(ctx, routeDashboard); err != nil {
		return err
	}
	a.render()
	return nil
}

// ToggleUserRole flips a user's role and refetches the dashboard.
func (a *App) ToggleUserRole(ctx context.Context, userID string) error {
	if err := a.dashboard.ToggleRole(ctx, userID); err != nil {
		a.alert("Failed to update user role")
		return err
	}
	a.render()
	return nil
}

// DeleteUser confirms, then deletes the user and refetches the
// dashboard. Declining issues no request.
func (a *App) DeleteUser(ctx context.Context, userID string) error {
	confirmed := confirmFn(a.reader, "Are you sure you want to delete this user?", a.out)
	if err := a.dashboard.DeleteUser(ctx, userID, confirmed); err != nil {
		a.alert("Failed to delete user")
		return err
	}
	if confirmed {
		a.render()
	}
	return nil
}

// wipe zeroes a password buffer once it is no longer needed.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
