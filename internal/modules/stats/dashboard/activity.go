package dashboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/models"
)

// ActivityFeed merges recent website and bookmark creations into one feed.
// Entries are collected per kind, merged, then sorted newest-first and
// truncated to limit. Sorting happens only after the merge so the feed stays
// globally ordered across kinds.
func (s *Service) ActivityFeed(ownerID string, days, limit int) ([]ActivityEntry, error) {
	if days < 1 {
		return nil, fmt.Errorf("%w: days=%d", ErrInvalidParameter, days)
	}
	if limit < 1 {
		return nil, fmt.Errorf("%w: limit=%d", ErrInvalidParameter, limit)
	}

	cutoff := time.Now().AddDate(0, 0, -days)

	entries := make([]ActivityEntry, 0, limit*2)
	for _, kind := range []EntityKind{KindWebsite, KindBookmark} {
		kindEntries, err := s.recentCreations(kind, ownerID, cutoff, limit)
		if err != nil {
			return nil, err
		}
		entries = append(entries, kindEntries...)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *Service) recentCreations(kind EntityKind, ownerID string, cutoff time.Time, limit int) ([]ActivityEntry, error) {
	policy := kindPolicies[kind]

	entries := make([]ActivityEntry, 0, limit)
	switch kind {
	case KindWebsite:
		var websites []models.WebsiteModel
		if err := s.db.Where("user_id = ? AND created_at >= ?", ownerID, cutoff).
			Order("created_at DESC").Limit(limit).Find(&websites).Error; err != nil {
			return nil, err
		}
		for _, w := range websites {
			entries = append(entries, ActivityEntry{
				Type:      string(kind),
				Action:    policy.actionLabel,
				Title:     w.Title,
				URL:       w.URL,
				Timestamp: w.CreatedAt,
			})
		}
	case KindBookmark:
		var bookmarks []models.BookmarkModel
		if err := s.db.Where("user_id = ? AND created_at >= ?", ownerID, cutoff).
			Order("created_at DESC").Limit(limit).Find(&bookmarks).Error; err != nil {
			return nil, err
		}
		for _, b := range bookmarks {
			entries = append(entries, ActivityEntry{
				Type:      string(kind),
				Action:    policy.actionLabel,
				Title:     b.Title,
				URL:       b.URL,
				Timestamp: b.CreatedAt,
			})
		}
	}
	return entries, nil
}
