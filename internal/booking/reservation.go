package booking

import (
	"context"
	"strconv"
	"strings"

	"github.com/Lixing-Zhang/suswaad-cafe/internal/models"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/storage"
)

// Sweep drops reservations whose age has reached the reservation TTL and
// writes the remaining ones back. It returns how many were removed.
func (s *Service) Sweep(ctx context.Context, session string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sweep(ctx, session)
}

// sweep is Sweep without locking. Caller holds s.mu.
func (s *Service) sweep(ctx context.Context, session string) (int, error) {
	kv := s.scoped(session)
	entries, err := storage.LoadList[models.ReservationEntry](ctx, kv, storage.ReservationsKey)
	if err != nil {
		return 0, err
	}

	now := s.now()
	kept := make([]models.ReservationEntry, 0, len(entries))
	for _, e := range entries {
		if now.Sub(e.Created) < s.policy.ReservationTTL {
			kept = append(kept, e)
		}
	}

	if err := storage.SaveList(ctx, kv, storage.ReservationsKey, kept); err != nil {
		return 0, err
	}

	removed := len(entries) - len(kept)
	if removed > 0 {
		s.log.Info("expired reservations removed", "session", session, "removed", removed)
	}
	return removed, nil
}

// Reserve validates and records a table reservation. Stale reservations are
// swept first.
func (s *Service) Reserve(ctx context.Context, session string, req models.ReservationRequest) (*models.ReservationEntry, error) {
	req = models.ReservationRequest{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Date:    strings.TrimSpace(req.Date),
		Time:    strings.TrimSpace(req.Time),
		Message: strings.TrimSpace(req.Message),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.sweep(ctx, session); err != nil {
		return nil, err
	}

	hour, ok := parseHour(req.Time)
	if !ok || hour < s.policy.OpenHour || hour >= s.policy.CloseHour {
		s.notify(session, MsgOutsideOpeningHours, false)
		return nil, ErrOutsideOpeningHours
	}

	now := s.now().In(s.policy.Location)
	if req.Date == now.Format("2006-01-02") && now.Hour() >= s.policy.SameDayCutoffHour {
		s.notify(session, MsgTooLateToday, false)
		return nil, ErrTooLateToday
	}

	entry := models.ReservationEntry{
		ID:      s.newID(),
		Name:    req.Name,
		Email:   req.Email,
		Date:    req.Date,
		Time:    req.Time,
		Message: req.Message,
		Created: s.now().UTC(),
	}

	kv := s.scoped(session)
	entries, err := storage.LoadList[models.ReservationEntry](ctx, kv, storage.ReservationsKey)
	if err != nil {
		return nil, err
	}
	entries = append(entries, entry)
	if err := storage.SaveList(ctx, kv, storage.ReservationsKey, entries); err != nil {
		return nil, err
	}

	s.log.Info("reservation recorded", "session", session, "reservation_id", entry.ID, "date", entry.Date, "time", entry.Time)
	s.notify(session, ReservedMessage(entry.Time, s.policy.ReservationTTL), true)
	return &entry, nil
}

// Reservations sweeps and then returns the session's live reservations
func (s *Service) Reservations(ctx context.Context, session string) ([]models.ReservationEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.sweep(ctx, session); err != nil {
		return nil, err
	}
	return storage.LoadList[models.ReservationEntry](ctx, s.scoped(session), storage.ReservationsKey)
}

// parseHour reads the hour from an HH:MM value
func parseHour(value string) (int, bool) {
	hourPart, _, _ := strings.Cut(value, ":")
	hour, err := strconv.Atoi(strings.TrimSpace(hourPart))
	if err != nil {
		return 0, false
	}
	return hour, true
}
