package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/dmitrijs2005/quotejournal/internal/client"
	"github.com/dmitrijs2005/quotejournal/internal/config"
	"github.com/dmitrijs2005/quotejournal/internal/logging"
	"github.com/dmitrijs2005/quotejournal/internal/models"
)

// ---- helpers ----

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestApp(t *testing.T, api client.Client, auth *fakeAuthSvc) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	cfg := &config.Config{APIBaseURL: "http://test", TokenFile: "unused"}
	a := newApp(cfg, discardLogger(), api, auth, strings.NewReader(""), &out)
	return a, &out
}

// stubTextInputs replaces the text prompt seam with canned answers,
// returned in order.
func stubTextInputs(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			t.Fatalf("unexpected text prompt #%d", i+1)
		}
		a := answers[i]
		i++
		return a, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

func stubPassword(t *testing.T, pw []byte) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return pw, nil }
	t.Cleanup(func() { getPassword = orig })
}

func stubYesNo(t *testing.T, answer bool) {
	t.Helper()
	orig := getYesNo
	getYesNo = func(_ *bufio.Reader, _ string, _ bool, _ io.Writer) (bool, error) { return answer, nil }
	t.Cleanup(func() { getYesNo = orig })
}

func stubConfirm(t *testing.T, answer bool) {
	t.Helper()
	orig := confirmFn
	confirmFn = func(_ *bufio.Reader, _ string, _ io.Writer) bool { return answer }
	t.Cleanup(func() { confirmFn = orig })
}

// ---- fake API gateway ----

type roleCall struct {
	userID string
	role   string
}

// fakeAPI implements client.Client and records every call.
type fakeAPI struct {
	listCalls map[client.QuoteScope]int
	listRet   map[client.QuoteScope][]models.Quote
	listErr   error

	created   []models.NewQuote
	createErr error

	deletedQuotes []string
	deleteErr     error

	dashCalls int
	dashRet   *models.Dashboard
	dashErr   error

	roleCalls []roleCall
	roleErr   error

	deletedUsers  []string
	userDeleteErr error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		listCalls: make(map[client.QuoteScope]int),
		listRet:   make(map[client.QuoteScope][]models.Quote),
	}
}

func (f *fakeAPI) totalListCalls() int {
	n := 0
	for _, c := range f.listCalls {
		n += c
	}
	return n
}

func (f *fakeAPI) Login(_ context.Context, _, _ string) (string, error) {
	return "", nil
}

func (f *fakeAPI) Register(_ context.Context, _, _, _ string) (string, error) {
	return "", nil
}

func (f *fakeAPI) ListQuotes(_ context.Context, scope client.QuoteScope) ([]models.Quote, error) {
	f.listCalls[scope]++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listRet[scope], nil
}

func (f *fakeAPI) CreateQuote(_ context.Context, quote models.NewQuote) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, quote)
	return nil
}

func (f *fakeAPI) DeleteQuote(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedQuotes = append(f.deletedQuotes, id)
	return nil
}

func (f *fakeAPI) Dashboard(_ context.Context) (*models.Dashboard, error) {
	f.dashCalls++
	if f.dashErr != nil {
		return nil, f.dashErr
	}
	return f.dashRet, nil
}

func (f *fakeAPI) DeleteUser(_ context.Context, id string) error {
	if f.userDeleteErr != nil {
		return f.userDeleteErr
	}
	f.deletedUsers = append(f.deletedUsers, id)
	return nil
}

func (f *fakeAPI) SetUserRole(_ context.Context, id string, role string) error {
	if f.roleErr != nil {
		return f.roleErr
	}
	f.roleCalls = append(f.roleCalls, roleCall{userID: id, role: role})
	return nil
}

// ---- fake auth service ----

type fakeAuthSvc struct {
	authenticated bool
	role          string

	loginErr      error
	registerMsg   string
	registerErr   error
	logoutCalled  bool
	lastLoginUser string
}

func (f *fakeAuthSvc) Login(_ context.Context, email string, _ []byte) error {
	f.lastLoginUser = email
	if f.loginErr != nil {
		return f.loginErr
	}
	f.authenticated = true
	return nil
}

func (f *fakeAuthSvc) Register(_ context.Context, _, _ string, _ []byte) (string, error) {
	return f.registerMsg, f.registerErr
}

func (f *fakeAuthSvc) Logout(_ context.Context) error {
	f.logoutCalled = true
	f.authenticated = false
	f.role = ""
	return nil
}

func (f *fakeAuthSvc) IsAuthenticated(_ context.Context) bool {
	return f.authenticated
}

func (f *fakeAuthSvc) Role(_ context.Context) (string, bool) {
	if !f.authenticated || f.role == "" {
		return "", false
	}
	return f.role, true
}
