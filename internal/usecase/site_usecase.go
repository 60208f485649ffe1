package usecase

import (
	"context"
	"errors"
	"strings"

	"madinah_tours/internal/domain/entities"
	"madinah_tours/internal/usecase/interfaces"
)

var (
	ErrSiteNotFound  = errors.New("historical site not found")
	ErrInvalidSiteID = errors.New("invalid site id")
)

// ISiteUseCase exposes read-only catalog operations.

type ISiteUseCase interface {
	List(ctx context.Context) ([]entities.HistoricalSite, error)
	GetByID(ctx context.Context, id string) (entities.HistoricalSite, error)
}

type SiteUseCase struct {
	repo interfaces.ISiteRepository
}

var _ ISiteUseCase = (*SiteUseCase)(nil)

func NewSiteUseCase(repo interfaces.ISiteRepository) *SiteUseCase {
	return &SiteUseCase{repo: repo}
}

func (u *SiteUseCase) List(ctx context.Context) ([]entities.HistoricalSite, error) {
	return u.repo.List(ctx)
}

func (u *SiteUseCase) GetByID(ctx context.Context, id string) (entities.HistoricalSite, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.HistoricalSite{}, ErrInvalidSiteID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.HistoricalSite{}, err
	}
	if s.ID == "" {
		return entities.HistoricalSite{}, ErrSiteNotFound
	}
	return s, nil
}
