package cli

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/dmitrijs2005/quotejournal/internal/client"
	"github.com/dmitrijs2005/quotejournal/internal/logging"
	"github.com/dmitrijs2005/quotejournal/internal/models"
)

// DashboardPage is the controller of the admin dashboard view: aggregate
// stat tiles plus the user table. Stats and users arrive in one combined
// response and are never patched locally; every mutation is followed by
// an unconditional refetch of the whole payload.
type DashboardPage struct {
	api    client.Client
	logger logging.Logger

	loading bool
	data    *models.Dashboard
}

func NewDashboardPage(api client.Client, logger logging.Logger) *DashboardPage {
	return &DashboardPage{api: api, logger: logger.With("page", "dashboard")}
}

// Mount fetches the dashboard payload. Load failures are logged and
// leave the view empty.
func (p *DashboardPage) Mount(ctx context.Context, _ url.Values) error {
	p.fetch(ctx)
	return nil
}

func (p *DashboardPage) fetch(ctx context.Context) {
	p.loading = true
	p.data = nil

	d, err := p.api.Dashboard(ctx)
	p.loading = false
	if err != nil {
		p.logger.Error(ctx, "error fetching dashboard data", "error", err)
		return
	}
	p.data = d
}

// Data returns the last fetched payload, or nil when none is loaded.
func (p *DashboardPage) Data() *models.Dashboard {
	return p.data
}

// userByID looks a user up in the loaded payload.
func (p *DashboardPage) userByID(id string) *models.User {
	if p.data == nil {
		return nil
	}
	for i := range p.data.AllUsers {
		if p.data.AllUsers[i].ID == id {
			return &p.data.AllUsers[i]
		}
	}
	return nil
}

// ToggleRole flips a user's role between USER and ADMIN, then refetches
// the whole dashboard payload.
func (p *DashboardPage) ToggleRole(ctx context.Context, userID string) error {
	u := p.userByID(userID)
	if u == nil {
		return fmt.Errorf("unknown user %q", userID)
	}
	if err := p.api.SetUserRole(ctx, userID, models.ToggledRole(u.Role)); err != nil {
		return err
	}
	p.fetch(ctx)
	return nil
}

// DeleteUser removes a user after confirmation. A declined confirmation
// issues no request. A successful delete refetches the whole payload.
func (p *DashboardPage) DeleteUser(ctx context.Context, userID string, confirmed bool) error {
	if !confirmed {
		return nil
	}
	if err := p.api.DeleteUser(ctx, userID); err != nil {
		return err
	}
	p.fetch(ctx)
	return nil
}

// Render writes the stat tiles and the user table.
func (p *DashboardPage) Render(w io.Writer) {
	fmt.Fprintln(w, "--- Admin Dashboard ---")
	if p.loading {
		fmt.Fprintln(w, "Loading Dashboard...")
		return
	}
	if p.data == nil {
		fmt.Fprintln(w, "No data.")
		return
	}

	fmt.Fprintf(w, "Total Users: %d | Total Quotes: %d | Public: %d | Private: %d\n",
		p.data.TotalUsers, p.data.TotalQuotes, p.data.PublicQuotes, p.data.PrivateQuotes)

	fmt.Fprintln(w, "User Management:")
	for _, u := range p.data.AllUsers {
		verified := "unverified"
		if u.IsVerified {
			verified = "verified"
		}
		fmt.Fprintf(w, "[%s] %s <%s> %s (%s)\n", u.ID, u.Name, u.Email, u.Role, verified)
	}
}
