package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/identity-service/internal/domain"
	"github.com/spec-kit/identity-service/internal/repository"
)

type fakeUserRepo struct {
	mu            sync.Mutex
	byID          map[string]*domain.User
	err           error
	writeErr      error
	emailCalls    int
	nicknameCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*domain.User{}}
}

func (r *fakeUserRepo) put(u *domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	r.byID[u.ID] = u
}

func (r *fakeUserRepo) load(match func(*domain.User) bool) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.byID {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if r.err != nil {
		return r.err
	}
	if r.writeErr != nil {
		return r.writeErr
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	r.put(&cp)
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if r.writeErr != nil {
		return r.writeErr
	}
	if _, ok := r.byID[user.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdateStatus(_ context.Context, id string, status domain.UserStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	u, ok := r.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Status = status
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(func(u *domain.User) bool { return u.ID == id })
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.emailCalls++
	return r.load(func(u *domain.User) bool { return u.Email == email })
}

func (r *fakeUserRepo) GetByNickname(_ context.Context, nickname string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nicknameCalls++
	return r.load(func(u *domain.User) bool { return u.Nickname != nil && *u.Nickname == nickname })
}

func (r *fakeUserRepo) setStatus(id string, status domain.UserStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[id].Status = status
}

func (r *fakeUserRepo) delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
}

type fakeRevocations struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
	err     error
}

func newFakeRevocations() *fakeRevocations {
	return &fakeRevocations{revoked: map[string]time.Duration{}}
}

func (f *fakeRevocations) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.revoked[jti] = ttl
	return nil
}

func (f *fakeRevocations) IsRevoked(_ context.Context, jti string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.revoked[jti]
	return ok, nil
}

type fakeCompanyRepo struct {
	byID map[string]*domain.Company
	err  error
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{byID: map[string]*domain.Company{}}
}

func (r *fakeCompanyRepo) Create(_ context.Context, c *domain.Company) error {
	if r.err != nil {
		return r.err
	}
	c.ID = uuid.NewString()
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id string) (*domain.Company, error) {
	if c, ok := r.byID[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeCompanyRepo) GetByNIT(_ context.Context, base string) (*domain.Company, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, c := range r.byID {
		if c.NIT == base {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}
