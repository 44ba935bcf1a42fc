package booking

import (
	"context"
	"strings"

	"github.com/Lixing-Zhang/suswaad-cafe/internal/models"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/storage"
)

// Preorder validates and appends a pick-up pre-order to the session's log
func (s *Service) Preorder(ctx context.Context, session string, req models.PreorderRequest) (*models.PreorderEntry, error) {
	entry := models.PreorderEntry{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
		Date:  strings.TrimSpace(req.Date),
		Time:  strings.TrimSpace(req.Time),
		Item:  strings.TrimSpace(req.Item),
	}
	if entry.Name == "" || entry.Email == "" || entry.Date == "" || entry.Time == "" || entry.Item == "" {
		s.notify(session, MsgMissingFields, false)
		return nil, ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = s.newID()
	entry.Created = s.now().UTC()

	kv := s.scoped(session)
	entries, err := storage.LoadList[models.PreorderEntry](ctx, kv, storage.PreordersKey)
	if err != nil {
		return nil, err
	}
	entries = append(entries, entry)
	if err := storage.SaveList(ctx, kv, storage.PreordersKey, entries); err != nil {
		return nil, err
	}

	s.log.Info("pre-order recorded", "session", session, "preorder_id", entry.ID, "item", entry.Item)
	s.notify(session, PreorderedMessage(entry.Item, entry.Time), true)
	return &entry, nil
}

// Preorders returns the session's pre-order log in submission order
func (s *Service) Preorders(ctx context.Context, session string) ([]models.PreorderEntry, error) {
	return storage.LoadList[models.PreorderEntry](ctx, s.scoped(session), storage.PreordersKey)
}
