package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rnqayush/storefront-platform/internal/domain"
	"github.com/rnqayush/storefront-platform/internal/dto"
	"github.com/rnqayush/storefront-platform/internal/repository"
	"github.com/rnqayush/storefront-platform/pkg/logger"
	"github.com/rnqayush/storefront-platform/pkg/redis"
)

// WebsiteService defines the interface for website management operations
type WebsiteService interface {
	// Create creates a new website in the draft state
	Create(ctx context.Context, ownerID string, req *dto.CreateWebsiteRequest) (*dto.WebsiteResponse, error)
	// GetByID retrieves a website by ID
	GetByID(ctx context.Context, id string) (*dto.WebsiteResponse, error)
	// GetBySlug retrieves a website by slug
	GetBySlug(ctx context.Context, slug string) (*dto.WebsiteResponse, error)
	// ResolveActiveBySlug resolves a slug to an active website for tenant
	// routing. Returns nil without error when the slug does not resolve.
	ResolveActiveBySlug(ctx context.Context, slug string) (*domain.Website, error)
	// LoadByID loads the website aggregate for ownership guards. Returns nil
	// without error when no such website exists.
	LoadByID(ctx context.Context, id string) (*domain.Website, error)
	// List retrieves websites with pagination and filters
	List(ctx context.Context, query *dto.ListWebsitesQuery) (*dto.ListWebsitesResponse, error)
	// Update updates a website; the slug is immutable
	Update(ctx context.Context, id string, req *dto.UpdateWebsiteRequest) (*dto.WebsiteResponse, error)
	// Delete soft deletes a website
	Delete(ctx context.Context, id string) error
}

// websiteService implements WebsiteService
type websiteService struct {
	websiteRepo repository.WebsiteRepository
	cache       *redis.Client
	cacheTTL    time.Duration
}

// NewWebsiteService creates a new WebsiteService. The cache client may be nil,
// in which case slug resolution always hits the database.
func NewWebsiteService(websiteRepo repository.WebsiteRepository, cache *redis.Client, cacheTTL time.Duration) WebsiteService {
	return &websiteService{
		websiteRepo: websiteRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

func websiteCacheKey(slug string) string {
	return fmt.Sprintf("website:slug:%s", slug)
}

// Create creates a new website in the draft state
func (s *websiteService) Create(ctx context.Context, ownerID string, req *dto.CreateWebsiteRequest) (*dto.WebsiteResponse, error) {
	if err := domain.ValidateSlug(req.Slug); err != nil {
		return nil, err
	}

	exists, err := s.websiteRepo.ExistsBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrSlugTaken
	}

	now := time.Now()
	website := &domain.Website{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Slug:      req.Slug,
		Domain:    req.Domain,
		Type:      domain.WebsiteType(req.Type),
		OwnerID:   ownerID,
		Status:    domain.WebsiteStatusDraft,
		Settings:  req.Settings,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if website.Settings == nil {
		website.Settings = make(map[string]interface{})
	}

	if err := s.websiteRepo.Create(ctx, website); err != nil {
		return nil, err
	}

	return toWebsiteResponse(website), nil
}

// GetByID retrieves a website by ID
func (s *websiteService) GetByID(ctx context.Context, id string) (*dto.WebsiteResponse, error) {
	website, err := s.websiteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if website == nil {
		return nil, domain.ErrWebsiteNotFound
	}
	return toWebsiteResponse(website), nil
}

// GetBySlug retrieves a website by slug
func (s *websiteService) GetBySlug(ctx context.Context, slug string) (*dto.WebsiteResponse, error) {
	website, err := s.websiteRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if website == nil {
		return nil, domain.ErrWebsiteNotFound
	}
	return toWebsiteResponse(website), nil
}

// LoadByID loads the website aggregate for ownership guards
func (s *websiteService) LoadByID(ctx context.Context, id string) (*domain.Website, error) {
	return s.websiteRepo.GetByID(ctx, id)
}

// ResolveActiveBySlug resolves a slug to an active website, reading through
// the cache. Only active websites are cached and returned.
func (s *websiteService) ResolveActiveBySlug(ctx context.Context, slug string) (*domain.Website, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, websiteCacheKey(slug)).Result()
		if err == nil {
			website := &domain.Website{}
			if err := json.Unmarshal([]byte(cached), website); err == nil {
				return website, nil
			}
		} else if !redis.IsNil(err) {
			logger.WarnCtx(ctx, "website cache read failed", zap.String("slug", slug), zap.Error(err))
		}
	}

	website, err := s.websiteRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if website == nil || !website.IsActive() {
		return nil, nil
	}

	if s.cache != nil {
		if data, err := json.Marshal(website); err == nil {
			if err := s.cache.Set(ctx, websiteCacheKey(slug), data, s.cacheTTL).Err(); err != nil {
				logger.WarnCtx(ctx, "website cache write failed", zap.String("slug", slug), zap.Error(err))
			}
		}
	}

	return website, nil
}

// List retrieves websites with pagination and filters
func (s *websiteService) List(ctx context.Context, query *dto.ListWebsitesQuery) (*dto.ListWebsitesResponse, error) {
	query.SetDefaults()

	filter := repository.WebsiteFilter{
		OwnerID: query.OwnerID,
		Type:    domain.WebsiteType(query.Type),
		Status:  domain.WebsiteStatus(query.Status),
		Search:  query.Search,
	}

	websites, totalCount, err := s.websiteRepo.List(ctx, query.Page, query.Limit, filter)
	if err != nil {
		return nil, err
	}

	websiteResponses := make([]dto.WebsiteResponse, 0, len(websites))
	for _, website := range websites {
		websiteResponses = append(websiteResponses, *toWebsiteResponse(website))
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(query.Limit)))

	return &dto.ListWebsitesResponse{
		Websites:   websiteResponses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
	}, nil
}

// Update updates a website; the slug is immutable
func (s *websiteService) Update(ctx context.Context, id string, req *dto.UpdateWebsiteRequest) (*dto.WebsiteResponse, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	website, err := s.websiteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if website == nil {
		return nil, domain.ErrWebsiteNotFound
	}

	if req.Name != nil {
		website.Name = *req.Name
	}
	if req.Domain != nil {
		website.Domain = *req.Domain
	}
	if req.Status != nil {
		website.Status = domain.WebsiteStatus(*req.Status)
	}
	if req.Settings != nil {
		website.Settings = *req.Settings
	}

	if err := s.websiteRepo.Update(ctx, website); err != nil {
		return nil, err
	}

	s.invalidate(ctx, website.Slug)

	return toWebsiteResponse(website), nil
}

// Delete soft deletes a website
func (s *websiteService) Delete(ctx context.Context, id string) error {
	website, err := s.websiteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if website == nil {
		return domain.ErrWebsiteNotFound
	}

	if err := s.websiteRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, website.Slug)
	return nil
}

// invalidate drops the cached slug entry after a mutation
func (s *websiteService) invalidate(ctx context.Context, slug string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, websiteCacheKey(slug)).Err(); err != nil {
		logger.WarnCtx(ctx, "website cache invalidation failed", zap.String("slug", slug), zap.Error(err))
	}
}

// toWebsiteResponse converts domain.Website to dto.WebsiteResponse
func toWebsiteResponse(website *domain.Website) *dto.WebsiteResponse {
	return &dto.WebsiteResponse{
		ID:        website.ID,
		Name:      website.Name,
		Slug:      website.Slug,
		Domain:    website.Domain,
		Type:      string(website.Type),
		OwnerID:   website.OwnerID,
		Status:    string(website.Status),
		Settings:  website.Settings,
		CreatedAt: website.CreatedAt.Format(time.RFC3339),
		UpdatedAt: website.UpdatedAt.Format(time.RFC3339),
	}
}
