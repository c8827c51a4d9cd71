package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rnqayush/storefront-platform/internal/domain"
	"github.com/rnqayush/storefront-platform/internal/dto"
	"github.com/rnqayush/storefront-platform/internal/repository"
)

type fakeWebsiteRepo struct {
	websites map[string]*domain.Website
}

func newFakeWebsiteRepo(websites ...*domain.Website) *fakeWebsiteRepo {
	r := &fakeWebsiteRepo{websites: make(map[string]*domain.Website)}
	for _, w := range websites {
		r.websites[w.ID] = w
	}
	return r
}

func (r *fakeWebsiteRepo) Create(_ context.Context, website *domain.Website) error {
	r.websites[website.ID] = website
	return nil
}

func (r *fakeWebsiteRepo) GetByID(_ context.Context, id string) (*domain.Website, error) {
	return r.websites[id], nil
}

func (r *fakeWebsiteRepo) GetBySlug(_ context.Context, slug string) (*domain.Website, error) {
	for _, w := range r.websites {
		if w.Slug == slug {
			return w, nil
		}
	}
	return nil, nil
}

func (r *fakeWebsiteRepo) List(_ context.Context, _, _ int, filter repository.WebsiteFilter) ([]*domain.Website, int, error) {
	var out []*domain.Website
	for _, w := range r.websites {
		if filter.OwnerID != "" && w.OwnerID != filter.OwnerID {
			continue
		}
		out = append(out, w)
	}
	return out, len(out), nil
}

func (r *fakeWebsiteRepo) Update(_ context.Context, website *domain.Website) error {
	r.websites[website.ID] = website
	return nil
}

func (r *fakeWebsiteRepo) SoftDelete(_ context.Context, id string) error {
	delete(r.websites, id)
	return nil
}

func (r *fakeWebsiteRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	w, _ := r.GetBySlug(ctx, slug)
	return w != nil, nil
}

var _ repository.WebsiteRepository = (*fakeWebsiteRepo)(nil)

func TestWebsiteServiceCreate(t *testing.T) {
	svc := NewWebsiteService(newFakeWebsiteRepo(), nil, 0)

	resp, err := svc.Create(context.Background(), "owner-1", &dto.CreateWebsiteRequest{
		Name: "Acme Hotels",
		Slug: "acme-hotels",
		Type: "hotel",
	})
	require.NoError(t, err)

	assert.Equal(t, "acme-hotels", resp.Slug)
	assert.Equal(t, "owner-1", resp.OwnerID)
	assert.Equal(t, "draft", resp.Status)
}

func TestWebsiteServiceCreateSlugRules(t *testing.T) {
	existing := &domain.Website{ID: "w1", Slug: "taken", Status: domain.WebsiteStatusActive}
	svc := NewWebsiteService(newFakeWebsiteRepo(existing), nil, 0)

	tests := []struct {
		name    string
		slug    string
		wantErr error
	}{
		{"reserved", "admin", domain.ErrReservedSlug},
		{"invalid", "Not A Slug", domain.ErrInvalidSlug},
		{"taken", "taken", domain.ErrSlugTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "owner-1", &dto.CreateWebsiteRequest{
				Name: "X",
				Slug: tt.slug,
				Type: "hotel",
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWebsiteServiceResolveActiveBySlug(t *testing.T) {
	active := &domain.Website{ID: "w1", Slug: "live", Status: domain.WebsiteStatusActive}
	draft := &domain.Website{ID: "w2", Slug: "draft", Status: domain.WebsiteStatusDraft}
	suspended := &domain.Website{ID: "w3", Slug: "suspended", Status: domain.WebsiteStatusSuspended}
	svc := NewWebsiteService(newFakeWebsiteRepo(active, draft, suspended), nil, 0)

	website, err := svc.ResolveActiveBySlug(context.Background(), "live")
	require.NoError(t, err)
	require.NotNil(t, website)
	assert.Equal(t, "w1", website.ID)

	// Non-active and unknown slugs resolve to nil without error
	for _, slug := range []string{"draft", "suspended", "ghost"} {
		website, err := svc.ResolveActiveBySlug(context.Background(), slug)
		require.NoError(t, err)
		assert.Nil(t, website, "slug %q should not resolve", slug)
	}
}

func TestWebsiteServiceUpdateKeepsSlug(t *testing.T) {
	existing := &domain.Website{ID: "w1", Slug: "acme", Name: "Old", Status: domain.WebsiteStatusDraft}
	svc := NewWebsiteService(newFakeWebsiteRepo(existing), nil, 0)

	name := "New Name"
	status := "active"
	resp, err := svc.Update(context.Background(), "w1", &dto.UpdateWebsiteRequest{
		Name:   &name,
		Status: &status,
	})
	require.NoError(t, err)

	assert.Equal(t, "acme", resp.Slug)
	assert.Equal(t, "New Name", resp.Name)
	assert.Equal(t, "active", resp.Status)
}

func TestWebsiteServiceDeleteNotFound(t *testing.T) {
	svc := NewWebsiteService(newFakeWebsiteRepo(), nil, 0)

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrWebsiteNotFound)
}

func TestWebsiteServiceLoadByID(t *testing.T) {
	existing := &domain.Website{ID: "w1", Slug: "acme", OwnerID: "owner-1", Status: domain.WebsiteStatusActive}
	svc := NewWebsiteService(newFakeWebsiteRepo(existing), nil, 0)

	website, err := svc.LoadByID(context.Background(), "w1")
	require.NoError(t, err)
	require.NotNil(t, website)
	assert.Equal(t, "owner-1", website.OwnerID)

	website, err = svc.LoadByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, website)
}
