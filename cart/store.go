// Package cart holds the authoritative in-memory cart state for one session
// and keeps the durable snapshot, the badge and the rendered panel in sync
// with it: every mutation persists the snapshot first, then recounts the
// badge, then re-renders the panel, so the three never diverge.
package cart

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"bellezamay-cart/logger"
	"bellezamay-cart/models"
	"bellezamay-cart/storage"
)

// Renderer projects cart state into displayed markup. Implementations must
// be pure: same lines and open flag, same output.
type Renderer interface {
	RenderPanel(lines []models.CartLine, open bool) string
	RenderBadge(count int) string
}

// Confirmer answers a blocking yes/no prompt. Over HTTP it is backed by the
// request's confirm field; tests inject a scripted responder.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

const ClearPrompt = "¿Vaciar todo el carrito?"

// Store owns the cart for one session key. It is not safe for concurrent
// use; the HTTP layer builds one per request.
type Store struct {
	key       string
	cart      models.Cart
	snapshots storage.SnapshotStore
	renderer  Renderer
	confirm   Confirmer
	log       *logger.Logger

	panel     string
	badge     string
	openPanel bool
}

// NewStore loads the session's snapshot and renders the initial panel and
// badge from it.
func NewStore(ctx context.Context, key string, snapshots storage.SnapshotStore, renderer Renderer, confirm Confirmer, log *logger.Logger) (*Store, error) {
	loaded, err := snapshots.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	s := &Store{
		key:       key,
		cart:      loaded,
		snapshots: snapshots,
		renderer:  renderer,
		confirm:   confirm,
		log:       log,
	}
	s.rerender()
	return s, nil
}

// AddItem merges a product into the cart. An existing line with the same
// name gets its quantity bumped; otherwise a new line is appended. The panel
// is flagged open afterwards as feedback.
func (s *Store) AddItem(ctx context.Context, name string, unitPrice int64, imageURL string) error {
	if strings.TrimSpace(name) == "" || unitPrice <= 0 {
		return ErrInvalidProduct
	}

	idx := s.cart.Add(name, unitPrice, imageURL)
	s.openPanel = true
	s.log.Debug("cart add",
		zap.String("name", name),
		zap.Int64("unit_price", unitPrice),
		zap.Int("quantity", s.cart.Lines[idx].Quantity))
	return s.commit(ctx)
}

// SetQuantity updates the line at index from raw user input. Non-numeric or
// non-positive input clamps to 1 rather than erroring; only a bad index is
// an error.
func (s *Store) SetQuantity(ctx context.Context, index int, raw string) error {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || qty < 1 {
		qty = 1
	}
	if !s.cart.SetQuantity(index, qty) {
		return ErrLineNotFound
	}
	return s.commit(ctx)
}

func (s *Store) RemoveItem(ctx context.Context, index int) error {
	if !s.cart.Remove(index) {
		return ErrLineNotFound
	}
	return s.commit(ctx)
}

// Clear empties the cart after an explicit confirmation. A declined prompt
// leaves every piece of state, durable and rendered, untouched.
func (s *Store) Clear(ctx context.Context) error {
	if !s.confirm.Confirm(ClearPrompt) {
		return ErrNotConfirmed
	}
	s.cart.Clear()
	return s.commit(ctx)
}

func (s *Store) Total() int64 {
	return s.cart.Total()
}

func (s *Store) ItemCount() int {
	return s.cart.ItemCount()
}

func (s *Store) Len() int {
	return s.cart.Len()
}

// Lines returns a copy; callers cannot mutate cart state through it.
func (s *Store) Lines() []models.CartLine {
	out := make([]models.CartLine, len(s.cart.Lines))
	copy(out, s.cart.Lines)
	return out
}

// Panel returns the panel markup rendered after the last state change.
func (s *Store) Panel() string {
	return s.panel
}

func (s *Store) Badge() string {
	return s.badge
}

// ShowPanel sets the panel's visibility and re-renders it so an opened panel
// is never stale. No persistence happens; visibility is not cart state.
func (s *Store) ShowPanel(open bool) {
	s.openPanel = open
	s.rerender()
}

// Persist writes the snapshot through without rendering; checkout uses it
// before handing off.
func (s *Store) Persist(ctx context.Context) error {
	return s.snapshots.Save(ctx, s.key, s.cart)
}

// commit is the write-through step behind every mutation: snapshot first,
// then badge, then panel. If the save fails nothing is re-rendered and the
// error propagates, leaving the previous consistent view in place.
func (s *Store) commit(ctx context.Context) error {
	if err := s.snapshots.Save(ctx, s.key, s.cart); err != nil {
		return err
	}
	s.rerender()
	return nil
}

func (s *Store) rerender() {
	s.badge = s.renderer.RenderBadge(s.cart.ItemCount())
	s.panel = s.renderer.RenderPanel(s.cart.Lines, s.openPanel)
}
