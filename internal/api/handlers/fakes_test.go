package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/johanstjernquist/portfolio-backend/internal/api/middleware"
	"github.com/johanstjernquist/portfolio-backend/internal/config"
	"github.com/johanstjernquist/portfolio-backend/internal/repository"
	"github.com/johanstjernquist/portfolio-backend/internal/service"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ============================================
// In-memory repositories
// ============================================

type memContactRepo struct {
	contacts []*repository.Contact
	nextID   int
	now      time.Time
}

func newMemContactRepo() *memContactRepo {
	return &memContactRepo{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (r *memContactRepo) Create(ctx context.Context, contact *repository.Contact) error {
	r.nextID++
	r.now = r.now.Add(time.Minute)
	contact.ID = fmt.Sprintf("contact-%d", r.nextID)
	contact.IsRead = false
	contact.CreatedAt = r.now
	r.contacts = append(r.contacts, contact)
	return nil
}

func (r *memContactRepo) List(ctx context.Context, offset, limit int) ([]*repository.Contact, int, error) {
	sorted := make([]*repository.Contact, len(r.contacts))
	copy(sorted, r.contacts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	total := len(sorted)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return sorted[offset:end], total, nil
}

func (r *memContactRepo) MarkRead(ctx context.Context, id string) (*repository.Contact, error) {
	for _, c := range r.contacts {
		if c.ID == id {
			c.IsRead = true
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memContactRepo) Delete(ctx context.Context, id string) error {
	for i, c := range r.contacts {
		if c.ID == id {
			r.contacts = append(r.contacts[:i], r.contacts[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memProjectRepo struct {
	projects []*repository.Project
	nextID   int
	now      time.Time
}

func newMemProjectRepo() *memProjectRepo {
	return &memProjectRepo{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (r *memProjectRepo) Create(ctx context.Context, project *repository.Project, order *int) error {
	if order != nil {
		project.DisplayOrder = *order
	} else {
		next := 0
		for _, p := range r.projects {
			if p.DisplayOrder >= next {
				next = p.DisplayOrder + 1
			}
		}
		project.DisplayOrder = next
	}
	r.nextID++
	r.now = r.now.Add(time.Minute)
	project.ID = fmt.Sprintf("project-%d", r.nextID)
	project.CreatedAt = r.now
	project.UpdatedAt = r.now
	r.projects = append(r.projects, project)
	return nil
}

func (r *memProjectRepo) FindByID(ctx context.Context, id string) (*repository.Project, error) {
	for _, p := range r.projects {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memProjectRepo) List(ctx context.Context, filter repository.ProjectFilter) ([]*repository.Project, error) {
	var out []*repository.Project
	for _, p := range r.projects {
		if !filter.IncludeHidden && !p.IsVisible {
			continue
		}
		if filter.Category != "" && filter.Category != "all" && p.Category != filter.Category {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memProjectRepo) Update(ctx context.Context, project *repository.Project) error {
	for i, p := range r.projects {
		if p.ID == project.ID {
			clone := *project
			clone.UpdatedAt = p.UpdatedAt.Add(time.Minute)
			r.projects[i] = &clone
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memProjectRepo) Delete(ctx context.Context, id string) error {
	for i, p := range r.projects {
		if p.ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memProjectRepo) UpdateOrders(ctx context.Context, orders []repository.ProjectOrder) error {
	byID := make(map[string]*repository.Project, len(r.projects))
	for _, p := range r.projects {
		byID[p.ID] = p
	}
	for _, o := range orders {
		if _, ok := byID[o.ID]; !ok {
			return fmt.Errorf("project %s: %w", o.ID, repository.ErrNotFound)
		}
	}
	for _, o := range orders {
		byID[o.ID].DisplayOrder = o.Order
	}
	return nil
}

type memUserRepo struct {
	users  map[string]*repository.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*repository.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *repository.User) error {
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.Email] = user
	return nil
}

func (r *memUserRepo) FindByEmail(ctx context.Context, email string) (*repository.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *memUserRepo) FindByID(ctx context.Context, id string) (*repository.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

// ============================================
// Test environment
// ============================================

// testEnv wires real services over in-memory repositories behind the
// same route tree the server mounts.
type testEnv struct {
	router   *gin.Engine
	contacts *memContactRepo
	projects *memProjectRepo
	users    *memUserRepo
	services *service.Services
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		contacts: newMemContactRepo(),
		projects: newMemProjectRepo(),
		users:    newMemUserRepo(),
	}

	cfg := &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: 24,
	}

	env.services = service.NewServices(&service.ServiceDeps{
		Config: cfg,
		Repos: &repository.Repositories{
			ContactRepo: env.contacts,
			ProjectRepo: env.projects,
			UserRepo:    env.users,
		},
	})

	h := NewHandlers(env.services)

	r := gin.New()
	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
			auth.GET("/profile", middleware.AuthMiddleware(env.services.Auth), h.Auth.Profile)
		}

		contacts := api.Group("/contacts")
		{
			contacts.POST("", h.Contact.Submit)

			adminContacts := contacts.Group("")
			adminContacts.Use(middleware.AuthMiddleware(env.services.Auth), middleware.RequireAdmin())
			{
				adminContacts.GET("", h.Contact.List)
				adminContacts.PATCH("/:id/read", h.Contact.MarkRead)
				adminContacts.DELETE("/:id", h.Contact.Delete)
			}
		}

		projects := api.Group("/projects")
		{
			projects.GET("", middleware.OptionalAuthMiddleware(env.services.Auth), h.Project.List)
			projects.GET("/:id", h.Project.Get)

			adminProjects := projects.Group("")
			adminProjects.Use(middleware.AuthMiddleware(env.services.Auth), middleware.RequireAdmin())
			{
				adminProjects.POST("", h.Project.Create)
				adminProjects.PUT("/:id", h.Project.Update)
				adminProjects.DELETE("/:id", h.Project.Delete)
				adminProjects.PATCH("/reorder", h.Project.Reorder)
			}
		}
	}
	env.router = r

	return env
}

func (e *testEnv) seedAccount(t *testing.T, email, password, role string) string {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	user := &repository.User{
		Name:     "Test User",
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := e.users.Create(context.Background(), user); err != nil {
		t.Fatal(err)
	}
	return user.ID
}

// adminToken seeds an admin account and returns a valid bearer token for it.
func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	e.seedAccount(t, "admin@example.com", "hunter22", service.RoleAdmin)
	_, token, err := e.services.Auth.Login(context.Background(), "admin@example.com", "hunter22")
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func (e *testEnv) userToken(t *testing.T) string {
	t.Helper()
	e.seedAccount(t, "user@example.com", "hunter22", "user")
	_, token, err := e.services.Auth.Login(context.Background(), "user@example.com", "hunter22")
	if err != nil {
		t.Fatal(err)
	}
	return token
}

// envelope mirrors the response body shape every endpoint returns.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var env envelope
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("response is not the standard envelope: %v\n%s", err, w.Body.String())
		}
	}
	return w, env
}

func decodeData(t *testing.T, env envelope, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("failed to decode data payload: %v\n%s", err, string(env.Data))
	}
}

func httpStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d\nbody: %s", w.Code, want, w.Body.String())
	}
}
