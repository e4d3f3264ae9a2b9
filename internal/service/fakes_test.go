package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/johanstjernquist/portfolio-backend/internal/repository"
)

// ============================================
// In-memory fakes
// ============================================

type fakeContactRepo struct {
	contacts  []*repository.Contact
	createErr error
	nextID    int
	now       time.Time
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (r *fakeContactRepo) Create(ctx context.Context, contact *repository.Contact) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	r.now = r.now.Add(time.Minute)
	contact.ID = fmt.Sprintf("contact-%d", r.nextID)
	contact.IsRead = false
	contact.CreatedAt = r.now
	r.contacts = append(r.contacts, contact)
	return nil
}

func (r *fakeContactRepo) List(ctx context.Context, offset, limit int) ([]*repository.Contact, int, error) {
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

func (r *fakeContactRepo) MarkRead(ctx context.Context, id string) (*repository.Contact, error) {
	for _, c := range r.contacts {
		if c.ID == id {
			c.IsRead = true
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeContactRepo) Delete(ctx context.Context, id string) error {
	for i, c := range r.contacts {
		if c.ID == id {
			r.contacts = append(r.contacts[:i], r.contacts[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeNotifier struct {
	notifyErr     error
	replyErr      error
	notifications int
	replies       int
}

func (n *fakeNotifier) SendContactNotification(contact *repository.Contact) error {
	n.notifications++
	return n.notifyErr
}

func (n *fakeNotifier) SendAutoReply(contact *repository.Contact) error {
	n.replies++
	return n.replyErr
}

type fakeProjectRepo struct {
	projects []*repository.Project
	nextID   int
	now      time.Time
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (r *fakeProjectRepo) add(p *repository.Project) *repository.Project {
	if p.ID == "" {
		r.nextID++
		p.ID = fmt.Sprintf("project-%d", r.nextID)
	}
	if p.CreatedAt.IsZero() {
		r.now = r.now.Add(time.Minute)
		p.CreatedAt = r.now
		p.UpdatedAt = r.now
	}
	r.projects = append(r.projects, p)
	return p
}

func (r *fakeProjectRepo) Create(ctx context.Context, project *repository.Project, order *int) error {
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
	r.add(project)
	return nil
}

func (r *fakeProjectRepo) FindByID(ctx context.Context, id string) (*repository.Project, error) {
	for _, p := range r.projects {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeProjectRepo) List(ctx context.Context, filter repository.ProjectFilter) ([]*repository.Project, error) {
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

func (r *fakeProjectRepo) Update(ctx context.Context, project *repository.Project) error {
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

func (r *fakeProjectRepo) Delete(ctx context.Context, id string) error {
	for i, p := range r.projects {
		if p.ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// UpdateOrders mimics the all-or-nothing transaction: nothing is applied
// unless every id resolves.
func (r *fakeProjectRepo) UpdateOrders(ctx context.Context, orders []repository.ProjectOrder) error {
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

type fakeUserRepo struct {
	users  map[string]*repository.User // by email
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*repository.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *repository.User) error {
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*repository.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*repository.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}
