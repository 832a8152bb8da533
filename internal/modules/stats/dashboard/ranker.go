package dashboard

import (
	"fmt"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/models"
)

// TopByPopularity returns the owner's n most-visited entries of one kind,
// most visited first. Inactive websites and archived bookmarks never rank.
// n <= 0 yields an empty slice.
func (s *Service) TopByPopularity(kind EntityKind, ownerID string, n int) ([]RankedItem, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: kind=%q", ErrInvalidParameter, kind)
	}
	if n <= 0 {
		return []RankedItem{}, nil
	}

	policy := kindPolicies[kind]
	scoped := policy.activeScope(s.db.Where("user_id = ?", ownerID)).
		Order("visit_count DESC").Limit(n)

	items := make([]RankedItem, 0, n)
	switch kind {
	case KindWebsite:
		var websites []models.WebsiteModel
		if err := scoped.Find(&websites).Error; err != nil {
			return nil, err
		}
		for _, w := range websites {
			quality := w.QualityScore
			items = append(items, RankedItem{
				ID:           w.ID,
				Title:        w.Title,
				URL:          w.URL,
				VisitCount:   w.VisitCount,
				QualityScore: &quality,
				LastVisited:  w.LastVisited,
			})
		}
	case KindBookmark:
		var bookmarks []models.BookmarkModel
		if err := scoped.Find(&bookmarks).Error; err != nil {
			return nil, err
		}
		for _, b := range bookmarks {
			favorite := b.IsFavorite
			items = append(items, RankedItem{
				ID:          b.ID,
				Title:       b.Title,
				URL:         b.URL,
				VisitCount:  b.VisitCount,
				IsFavorite:  &favorite,
				LastVisited: b.LastVisited,
			})
		}
	}
	return items, nil
}

// PopularContent bundles the top-10 rankings for both kinds.
func (s *Service) PopularContent(ownerID string) (*PopularResponse, error) {
	websites, err := s.TopByPopularity(KindWebsite, ownerID, topPopular)
	if err != nil {
		return nil, err
	}
	bookmarks, err := s.TopByPopularity(KindBookmark, ownerID, topPopular)
	if err != nil {
		return nil, err
	}
	return &PopularResponse{PopularWebsites: websites, PopularBookmarks: bookmarks}, nil
}
