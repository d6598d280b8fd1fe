package cli

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/quotejournal/internal/client"
)

func TestTabFromQuery(t *testing.T) {
	tests := []struct {
		name  string
		query url.Values
		want  Tab
	}{
		{name: "no parameter", query: url.Values{}, want: TabAll},
		{name: "public", query: url.Values{"tab": {"public"}}, want: TabPublic},
		{name: "private", query: url.Values{"tab": {"private"}}, want: TabPrivate},
		{name: "unknown value falls back to all", query: url.Values{"tab": {"starred"}}, want: TabAll},
		{name: "unrelated parameters ignored", query: url.Values{"q": {"love"}}, want: TabAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, TabFromQuery(tt.query))
		})
	}
}

func TestParseTab(t *testing.T) {
	tab, ok := ParseTab("public")
	require.True(t, ok)
	require.Equal(t, TabPublic, tab)

	tab, ok = ParseTab("all")
	require.True(t, ok)
	require.Equal(t, TabAll, tab)

	_, ok = ParseTab("bogus")
	require.False(t, ok)
}

func TestTabQueryRoundTrip(t *testing.T) {
	for _, tab := range []Tab{TabAll, TabPublic, TabPrivate} {
		require.Equal(t, tab, TabFromQuery(tab.Query()))
	}
	// the default tab contributes no query parameter
	require.Empty(t, TabAll.Query().Encode())
}

func TestTabScope(t *testing.T) {
	require.Equal(t, client.ScopeAll, TabAll.Scope())
	require.Equal(t, client.ScopePublic, TabPublic.Scope())
	require.Equal(t, client.ScopePrivate, TabPrivate.Scope())
}
