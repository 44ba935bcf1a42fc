package booking

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Lixing-Zhang/suswaad-cafe/internal/notify"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/storage"
	"github.com/google/uuid"
)

var (
	ErrMissingFields       = errors.New("required fields missing")
	ErrOutsideOpeningHours = errors.New("requested time outside opening hours")
	ErrTooLateToday        = errors.New("too late to book for today")
)

// User-facing messages for the validation failures
const (
	MsgMissingFields       = "Please fill all required fields"
	MsgOutsideOpeningHours = "Canteen open only 8AM-5PM"
	MsgTooLateToday        = "Cannot book after 4PM for today"
)

// Policy holds the café's booking rules
type Policy struct {
	Location          *time.Location
	OpenHour          int
	CloseHour         int
	SameDayCutoffHour int
	ReservationTTL    time.Duration
}

// DefaultPolicy is 8:00-17:00 opening, no same-day bookings from 16:00 and
// reservations auto-cancelled after 10 minutes
func DefaultPolicy() Policy {
	return Policy{
		Location:          time.Local,
		OpenHour:          8,
		CloseHour:         17,
		SameDayCutoffHour: 16,
		ReservationTTL:    10 * time.Minute,
	}
}

// Service records reservation and pre-order submissions per session
type Service struct {
	backend  storage.Store
	policy   Policy
	notifier notify.Notifier
	log      *slog.Logger
	now      func() time.Time
	newID    func() string

	// serializes the whole-blob read-modify-write of both logs
	mu sync.Mutex
}

// NewService creates a booking service. notifier may be nil.
func NewService(backend storage.Store, policy Policy, notifier notify.Notifier, log *slog.Logger) *Service {
	if policy.Location == nil {
		policy.Location = time.Local
	}
	return &Service{
		backend:  backend,
		policy:   policy,
		notifier: notifier,
		log:      log,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// WithClock replaces the service's time source
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Policy returns the booking rules in effect
func (s *Service) Policy() Policy {
	return s.policy
}

// ReservedMessage is the notification for a recorded reservation
func ReservedMessage(at string, ttl time.Duration) string {
	return fmt.Sprintf("Table booked for %s! Auto-cancels in %d mins if not confirmed", at, int(ttl.Minutes()))
}

// PreorderedMessage is the notification for a recorded pre-order
func PreorderedMessage(item, at string) string {
	return fmt.Sprintf(`"%s" pre-booked for %s!`, item, at)
}

func (s *Service) scoped(session string) storage.Store {
	return storage.Scoped(s.backend, session)
}

func (s *Service) notify(session, message string, success bool) {
	if s.notifier != nil {
		s.notifier.Push(session, message, success)
	}
}
