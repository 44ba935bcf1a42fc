package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"sync"

	"github.com/Lixing-Zhang/suswaad-cafe/internal/models"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/notify"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/repository"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/storage"
	"github.com/shopspring/decimal"
)

var (
	ErrItemNotFound = errors.New("item not found in catalog")
	ErrOutOfStock   = errors.New("item out of stock")
	ErrLineNotFound = errors.New("item not in cart")
)

// MsgOutOfStock is shown whenever an item cannot be added
const MsgOutOfStock = "Item out of stock!"

// AddedMessage is the notification for a successful add
func AddedMessage(name string) string {
	return fmt.Sprintf("%s added to cart!", name)
}

// Service hands out session carts over a shared backend
type Service struct {
	backend  storage.Store
	catalog  repository.CatalogRepository
	notifier notify.Notifier
	log      *slog.Logger

	// serializes the whole-blob read-modify-write of every cart
	mu sync.Mutex
}

// NewService creates a cart service. notifier may be nil.
func NewService(backend storage.Store, catalog repository.CatalogRepository, notifier notify.Notifier, log *slog.Logger) *Service {
	return &Service{
		backend:  backend,
		catalog:  catalog,
		notifier: notifier,
		log:      log,
	}
}

// Store returns the cart of one session
func (s *Service) Store(session string) *Store {
	return &Store{
		svc:     s,
		session: session,
		kv:      storage.Scoped(s.backend, session),
	}
}

// Store is a single visitor's cart. Every mutation rewrites the full list
// under storage.CartKey.
type Store struct {
	svc     *Service
	session string
	kv      storage.Store
}

// Load returns the persisted cart lines in insertion order
func (c *Store) Load(ctx context.Context) ([]models.CartLine, error) {
	return storage.LoadList[models.CartLine](ctx, c.kv, storage.CartKey)
}

// Add puts one unit of itemID in the cart. The item must exist in the catalog
// with stock above zero; otherwise the cart is left untouched.
func (c *Store) Add(ctx context.Context, itemID int64, name string, price float64) (models.CartLine, error) {
	item, err := c.svc.catalog.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			c.notify(MsgOutOfStock, false)
			return models.CartLine{}, ErrItemNotFound
		}
		return models.CartLine{}, fmt.Errorf("failed to look up item %d: %w", itemID, err)
	}
	if item.Stock <= 0 {
		c.notify(MsgOutOfStock, false)
		return models.CartLine{}, ErrOutOfStock
	}

	c.svc.mu.Lock()
	defer c.svc.mu.Unlock()

	lines, err := c.Load(ctx)
	if err != nil {
		return models.CartLine{}, err
	}

	idx := indexOf(lines, itemID)
	if idx >= 0 {
		lines[idx].Qty++
	} else {
		lines = append(lines, models.CartLine{ItemID: itemID, Name: name, Price: price, Qty: 1})
		idx = len(lines) - 1
	}

	if err := storage.SaveList(ctx, c.kv, storage.CartKey, lines); err != nil {
		return models.CartLine{}, err
	}

	c.svc.log.Debug("cart item added", "session", c.session, "item_id", itemID, "qty", lines[idx].Qty)
	c.notify(AddedMessage(name), true)
	return lines[idx], nil
}

// UpdateQty changes the quantity of an existing line by delta. The quantity
// never drops below 1; use Remove to take a line out.
func (c *Store) UpdateQty(ctx context.Context, itemID int64, delta int) (models.CartLine, error) {
	c.svc.mu.Lock()
	defer c.svc.mu.Unlock()

	lines, err := c.Load(ctx)
	if err != nil {
		return models.CartLine{}, err
	}

	idx := indexOf(lines, itemID)
	if idx < 0 {
		return models.CartLine{}, ErrLineNotFound
	}
	lines[idx].Qty = addQty(lines[idx].Qty, delta)

	if err := storage.SaveList(ctx, c.kv, storage.CartKey, lines); err != nil {
		return models.CartLine{}, err
	}
	return lines[idx], nil
}

// Remove drops every line for itemID. The cart is persisted even when
// nothing matched.
func (c *Store) Remove(ctx context.Context, itemID int64) error {
	c.svc.mu.Lock()
	defer c.svc.mu.Unlock()

	lines, err := c.Load(ctx)
	if err != nil {
		return err
	}

	kept := lines[:0]
	for _, l := range lines {
		if l.ItemID != itemID {
			kept = append(kept, l)
		}
	}
	return storage.SaveList(ctx, c.kv, storage.CartKey, kept)
}

// Total is the sum of price×qty over all lines
func (c *Store) Total(ctx context.Context) (decimal.Decimal, error) {
	view, err := c.View(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return view.Total, nil
}

// Count is the number of units in the cart
func (c *Store) Count(ctx context.Context) (int, error) {
	lines, err := c.Load(ctx)
	if err != nil {
		return 0, err
	}
	return countUnits(lines), nil
}

// Badge is the cart counter text: empty when the cart holds no units
func (c *Store) Badge(ctx context.Context) (string, error) {
	n, err := c.Count(ctx)
	if err != nil {
		return "", err
	}
	return badge(n), nil
}

func (c *Store) notify(message string, success bool) {
	if c.svc.notifier != nil {
		c.svc.notifier.Push(c.session, message, success)
	}
}

func indexOf(lines []models.CartLine, itemID int64) int {
	for i, l := range lines {
		if l.ItemID == itemID {
			return i
		}
	}
	return -1
}

// addQty applies delta saturating at math.MaxInt, never going below 1
func addQty(qty, delta int) int {
	if delta > 0 && qty > math.MaxInt-delta {
		return math.MaxInt
	}
	return max(1, qty+delta)
}

func countUnits(lines []models.CartLine) int {
	n := 0
	for _, l := range lines {
		n += l.Qty
	}
	return n
}

func badge(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
