// Package apitest provides an in-memory quote journal API server for
// tests. It implements the full HTTP surface the client consumes
// (auth, quote CRUD by scope, and the admin dashboard), issuing real
// HS256 tokens so the bearer path is exercised end to end.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/quotejournal/internal/models"
)

type account struct {
	models.User
	password string
}

type storedQuote struct {
	models.Quote
	ownerID string
}

// Server is a fake quote journal backend. All state lives in memory.
type Server struct {
	URL string

	hs     *httptest.Server
	secret []byte

	mu     sync.Mutex
	users  map[string]*account
	quotes map[string]*storedQuote
}

// NewServer starts a fake backend with no accounts. Callers seed users
// via AddUser and stop the server with Close.
func NewServer() *Server {
	s := &Server{
		secret: []byte("apitest-secret"),
		users:  make(map[string]*account),
		quotes: make(map[string]*storedQuote),
	}

	r := mux.NewRouter()
	r.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)

	authed := r.NewRoute().Subrouter()
	authed.Use(s.authMiddleware)
	authed.HandleFunc("/quotes", s.handleListQuotes("all")).Methods(http.MethodGet)
	authed.HandleFunc("/quotes/public", s.handleListQuotes("public")).Methods(http.MethodGet)
	authed.HandleFunc("/quotes/private", s.handleListQuotes("private")).Methods(http.MethodGet)
	authed.HandleFunc("/quotes", s.handleCreateQuote).Methods(http.MethodPost)
	authed.HandleFunc("/quotes/{id}", s.handleDeleteQuote).Methods(http.MethodDelete)

	admin := r.NewRoute().Subrouter()
	admin.Use(s.authMiddleware, s.adminMiddleware)
	admin.HandleFunc("/admin/dashboard", s.handleDashboard).Methods(http.MethodGet)
	admin.HandleFunc("/admin/users/{id}", s.handleDeleteUser).Methods(http.MethodDelete)
	admin.HandleFunc("/admin/users/{id}/role", s.handleSetRole).Methods(http.MethodPut)

	s.hs = httptest.NewServer(r)
	s.URL = s.hs.URL
	return s
}

func (s *Server) Close() {
	s.hs.Close()
}

// AddUser seeds an account and returns its id.
func (s *Server) AddUser(name, email, password, role string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.users[id] = &account{
		User:     models.User{ID: id, Name: name, Email: email, Role: role, IsVerified: true},
		password: password,
	}
	return id
}

// AddQuote seeds a quote owned by the given user and returns its id.
func (s *Server) AddQuote(ownerID, content, tag string, isPublic bool) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.quotes[id] = &storedQuote{
		Quote:   models.Quote{ID: id, Content: content, Tag: tag, IsPublic: isPublic},
		ownerID: ownerID,
	}
	return id
}

// User returns a copy of the stored account record, if any.
func (s *Server) User(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, false
	}
	return u.User, true
}

// TokenFor mints a token for the given account the same way login does.
func (s *Server) TokenFor(id string) string {
	s.mu.Lock()
	u, ok := s.users[id]
	s.mu.Unlock()
	if !ok {
		return ""
	}
	return s.mintToken(u)
}

func (s *Server) mintToken(u *account) string {
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"role":  u.Role,
		"exp":   jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		panic(err)
	}
	return tok
}

// ---- middleware ----

type ctxKey string

const callerKey ctxKey = "caller"

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const prefix = "Bearer "
		h := r.Header.Get("Authorization")
		if len(h) <= len(prefix) || h[:len(prefix)] != prefix {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		parsed, err := jwt.Parse(h[len(prefix):], func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !parsed.Valid {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		claims, ok := parsed.Claims.(jwt.MapClaims)
		if !ok {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		id, _ := claims["sub"].(string)

		s.mu.Lock()
		caller, ok := s.users[id]
		s.mu.Unlock()
		if !ok {
			writeError(w, http.StatusUnauthorized, "unknown user")
			return
		}

		ctx := contextWithCaller(r.Context(), caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) adminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller := callerFrom(r.Context())
		if caller == nil || caller.Role != models.RoleAdmin {
			writeError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ---- handlers ----

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	var match *account
	for _, u := range s.users {
		if u.Email == req.Email && u.password == req.Password {
			match = u
			break
		}
	}
	s.mu.Unlock()

	if match == nil {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": s.mintToken(match)})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	s.mu.Lock()
	for _, u := range s.users {
		if u.Email == req.Email {
			s.mu.Unlock()
			writeError(w, http.StatusConflict, "email already registered")
			return
		}
	}
	id := uuid.NewString()
	s.users[id] = &account{
		User:     models.User{ID: id, Name: req.Name, Email: req.Email, Role: models.RoleUser},
		password: req.Password,
	}
	s.mu.Unlock()

	// the real backend answers with a bare confirmation string
	writeJSON(w, http.StatusCreated, "Registration successful! Please verify your email.")
}

func (s *Server) handleListQuotes(scope string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := callerFrom(r.Context())

		s.mu.Lock()
		out := make([]models.Quote, 0)
		for _, q := range s.quotes {
			switch scope {
			case "public":
				if q.IsPublic {
					out = append(out, q.Quote)
				}
			case "private":
				if !q.IsPublic && q.ownerID == caller.ID {
					out = append(out, q.Quote)
				}
			default:
				if q.ownerID == caller.ID {
					out = append(out, q.Quote)
				}
			}
		}
		s.mu.Unlock()

		writeJSON(w, http.StatusOK, out)
	}
}

func (s *Server) handleCreateQuote(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r.Context())

	var req models.NewQuote
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "content is required")
		return
	}
	if req.Tag != "" && !models.IsValidTag(req.Tag) {
		writeError(w, http.StatusBadRequest, "unknown tag")
		return
	}

	s.mu.Lock()
	id := uuid.NewString()
	s.quotes[id] = &storedQuote{
		Quote:   models.Quote{ID: id, Content: req.Content, Tag: req.Tag, IsPublic: req.IsPublic},
		ownerID: caller.ID,
	}
	created := s.quotes[id].Quote
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteQuote(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r.Context())
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	q, ok := s.quotes[id]
	if !ok || q.ownerID != caller.ID {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "quote not found")
		return
	}
	delete(s.quotes, id)
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	d := models.Dashboard{AllUsers: make([]models.User, 0, len(s.users))}
	for _, u := range s.users {
		d.AllUsers = append(d.AllUsers, u.User)
	}
	d.TotalUsers = len(s.users)
	for _, q := range s.quotes {
		d.TotalQuotes++
		if q.IsPublic {
			d.PublicQuotes++
		} else {
			d.PrivateQuotes++
		}
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	if _, ok := s.users[id]; !ok {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	delete(s.users, id)
	for qid, q := range s.quotes {
		if q.ownerID == id {
			delete(s.quotes, qid)
		}
	}
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetRole(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Role != models.RoleAdmin && req.Role != models.RoleUser {
		writeError(w, http.StatusBadRequest, "unknown role")
		return
	}

	s.mu.Lock()
	u, ok := s.users[id]
	if !ok {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	u.Role = req.Role
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

// ---- helpers ----

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
