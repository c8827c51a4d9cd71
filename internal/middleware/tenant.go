package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rnqayush/storefront-platform/internal/domain"
	"github.com/rnqayush/storefront-platform/pkg/logger"
	"github.com/rnqayush/storefront-platform/pkg/middleware"
	"github.com/rnqayush/storefront-platform/pkg/response"
)

// ContextKeyWebsite is the gin context key holding the resolved website
const ContextKeyWebsite = "website"

// TenantSlugHeader carries an explicit tenant slug when neither the URL nor
// the Host identifies one
const TenantSlugHeader = "X-Tenant-Slug"

// WebsiteResolver resolves a slug to an active website. A nil website with a
// nil error means the slug does not resolve.
type WebsiteResolver interface {
	ResolveActiveBySlug(ctx context.Context, slug string) (*domain.Website, error)
}

// TenantResolver resolves the tenant website for a request. Sources are
// checked in order: the :slug URL param, the Host subdomain under baseDomain,
// then the X-Tenant-Slug header. The first non-empty candidate wins; there is
// no fallback to later sources when its lookup misses. Resolution is
// best-effort: lookup failures leave the request without a tenant rather
// than failing it, and RequireTenant enforces presence where needed.
func TenantResolver(resolver WebsiteResolver, baseDomain string) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := candidateSlug(c, baseDomain)
		if slug == "" {
			c.Next()
			return
		}

		website, err := resolver.ResolveActiveBySlug(c.Request.Context(), slug)
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "tenant resolution failed", zap.String("slug", slug), zap.Error(err))
			c.Next()
			return
		}
		if website != nil {
			c.Set(ContextKeyWebsite, website)
		}

		c.Next()
	}
}

// candidateSlug picks the tenant slug candidate for the request
func candidateSlug(c *gin.Context, baseDomain string) string {
	if slug := c.Param("slug"); slug != "" {
		return slug
	}

	if sub := subdomain(c.Request.Host, baseDomain); sub != "" {
		return sub
	}

	return c.GetHeader(TenantSlugHeader)
}

// subdomain extracts the first-level subdomain under baseDomain from the
// request host. Reserved subdomains and nested subdomains yield "".
func subdomain(host, baseDomain string) string {
	if baseDomain == "" {
		return ""
	}

	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	if !strings.HasSuffix(host, "."+baseDomain) {
		return ""
	}

	sub := strings.TrimSuffix(host, "."+baseDomain)
	if sub == "" || strings.Contains(sub, ".") {
		return ""
	}

	for _, reserved := range domain.ReservedSlugs {
		if sub == reserved {
			return ""
		}
	}

	return sub
}

// RequireTenant aborts with 404 when no tenant website was resolved
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetWebsite(c); !ok {
			c.AbortWithStatusJSON(http.StatusNotFound, response.Error(response.ErrCodeWebsiteNotFound, "Website not found"))
			return
		}
		c.Next()
	}
}

// WebsiteLoader loads a website aggregate by ID. A nil website with a nil
// error means no such website.
type WebsiteLoader interface {
	LoadByID(ctx context.Context, id string) (*domain.Website, error)
}

// LoadWebsiteParam loads the website named by the :id URL param into the
// context so ownership guards can run against it.
func LoadWebsiteParam(loader WebsiteLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		website, err := loader.LoadByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.InternalError(""))
			return
		}
		if website == nil {
			c.AbortWithStatusJSON(http.StatusNotFound, response.Error(response.ErrCodeWebsiteNotFound, "Website not found"))
			return
		}

		c.Set(ContextKeyWebsite, website)
		c.Next()
	}
}

// OwnerIDFunc yields the owner user ID the guard compares against
type OwnerIDFunc func(c *gin.Context) (string, bool)

// WebsiteOwner returns the owner of the resolved tenant website
func WebsiteOwner(c *gin.Context) (string, bool) {
	website, ok := GetWebsite(c)
	if !ok {
		return "", false
	}
	return website.OwnerID, true
}

// RequireOwner aborts with 403 unless the authenticated user matches the
// owner yielded by ownerID, or holds one of the elevated roles.
func RequireOwner(ownerID OwnerIDFunc, elevatedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := middleware.GetRole(c)
		for _, elevated := range elevatedRoles {
			if role == elevated {
				c.Next()
				return
			}
		}

		userID, ok := middleware.GetUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("User not authenticated"))
			return
		}

		owner, ok := ownerID(c)
		if !ok || owner != userID {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(response.ErrCodeNotWebsiteOwner, "You do not own this website"))
			return
		}

		c.Next()
	}
}

// GetWebsite extracts the resolved tenant website from gin context
func GetWebsite(c *gin.Context) (*domain.Website, bool) {
	value, exists := c.Get(ContextKeyWebsite)
	if !exists {
		return nil, false
	}
	website, ok := value.(*domain.Website)
	return website, ok
}
