package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rnqayush/storefront-platform/internal/domain"
	"github.com/rnqayush/storefront-platform/internal/dto"
	"github.com/rnqayush/storefront-platform/internal/repository"
)

type fakeUserRepo struct {
	users map[string]*domain.User // keyed by email
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.users[email], nil
}

func (r *fakeUserRepo) List(_ context.Context, _, _ int, _ domain.UserRole, _ string) ([]*domain.User, int, error) {
	return nil, 0, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) SoftDelete(_ context.Context, _ string) error { return nil }

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

// fakeLoginLimiter records limiter interactions in memory
type fakeLoginLimiter struct {
	blocked  bool
	failures int
	resets   int
}

func (l *fakeLoginLimiter) TooMany(_ context.Context, _ string) bool { return l.blocked }
func (l *fakeLoginLimiter) RecordFailure(_ context.Context, _ string) {
	l.failures++
}
func (l *fakeLoginLimiter) Reset(_ context.Context, _ string) { l.resets++ }

var _ LoginLimiter = (*fakeLoginLimiter)(nil)

const testPassword = "correct horse battery"

func testUser(t *testing.T) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           "user-1",
		Name:         "Test User",
		Email:        "user@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
		IsActive:     true,
	}
}

func newAuthTestService(t *testing.T, limiter LoginLimiter) AuthService {
	t.Helper()
	return NewAuthService(newFakeUserRepo(testUser(t)), limiter, "test-secret", time.Hour)
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	limiter := &fakeLoginLimiter{}
	svc := newAuthTestService(t, limiter)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "user@example.com", Password: testPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "user@example.com", resp.User.Email)

	// A successful login clears the attempt counter
	assert.Equal(t, 1, limiter.resets)
	assert.Zero(t, limiter.failures)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	limiter := &fakeLoginLimiter{}
	svc := newAuthTestService(t, limiter)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "user@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, 1, limiter.failures)
	assert.Zero(t, limiter.resets)
}

func TestAuthServiceLoginUnknownAccountCounts(t *testing.T) {
	limiter := &fakeLoginLimiter{}
	svc := newAuthTestService(t, limiter)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ghost@example.com", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, 1, limiter.failures)
}

func TestAuthServiceLoginThrottled(t *testing.T) {
	limiter := &fakeLoginLimiter{blocked: true}
	svc := newAuthTestService(t, limiter)

	// Even the correct password is rejected while the account is throttled
	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "user@example.com", Password: testPassword})
	assert.ErrorIs(t, err, ErrTooManyLoginAttempts)
	assert.Zero(t, limiter.resets)
}

func TestAuthServiceLoginWithoutLimiter(t *testing.T) {
	svc := newAuthTestService(t, nil)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "user@example.com", Password: testPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}
