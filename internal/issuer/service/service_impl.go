package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/invoicepilot/internal/cache"
	"github.com/smallbiznis/invoicepilot/internal/invoice/render"
	"github.com/smallbiznis/invoicepilot/internal/issuer/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	profileCacheKey = "issuer_profile"
	profileCacheTTL = 30 * time.Second
)

type Service struct {
	db    *gorm.DB
	repo  domain.Repository
	node  *snowflake.Node
	cache cache.Cache[string, *domain.Profile]
	log   *zap.Logger
}

// NewService builds the issuer profile service.
func NewService(db *gorm.DB, repo domain.Repository, node *snowflake.Node, log *zap.Logger) domain.Service {
	return &Service{
		db:    db,
		repo:  repo,
		node:  node,
		cache: cache.NewTTLCache[string, *domain.Profile](),
		log:   log,
	}
}

func (s *Service) Get(ctx context.Context) (*domain.Profile, error) {
	if profile, ok := s.cache.Get(profileCacheKey); ok {
		return profile, nil
	}

	profile, err := s.repo.Find(ctx, s.db)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return &domain.Profile{InvoiceTemplate: render.DefaultTemplate}, nil
		}
		return nil, err
	}

	s.cache.Set(profileCacheKey, profile, profileCacheTTL)
	return profile, nil
}

func (s *Service) UpdateBranding(ctx context.Context, req domain.UpdateBrandingRequest) (*domain.Profile, error) {
	profile, err := s.repo.Find(ctx, s.db)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, err
		}
		profile = &domain.Profile{
			ID:              s.node.Generate(),
			InvoiceTemplate: render.DefaultTemplate,
		}
	}

	applyPatch(&profile.BusinessName, req.BusinessName)
	applyPatch(&profile.Address, req.Address)
	applyPatch(&profile.Phone, req.Phone)
	applyPatch(&profile.TaxID, req.TaxID)
	applyPatch(&profile.LogoDataURI, req.LogoDataURI)
	applyPatch(&profile.PrimaryColor, req.PrimaryColor)
	applyPatch(&profile.SecondaryColor, req.SecondaryColor)
	applyPatch(&profile.AccentColor, req.AccentColor)
	if req.InvoiceTemplate != nil {
		profile.InvoiceTemplate = strings.TrimSpace(*req.InvoiceTemplate)
	}

	if err := s.repo.Save(ctx, s.db, profile); err != nil {
		return nil, err
	}
	s.cache.Delete(profileCacheKey)

	s.log.Info("issuer branding updated",
		zap.String("template", profile.InvoiceTemplate),
	)
	return profile, nil
}

func applyPatch(field *string, value *string) {
	if value != nil {
		*field = strings.TrimSpace(*value)
	}
}
