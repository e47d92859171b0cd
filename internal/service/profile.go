package service

import (
	"context"
	"log/slog"
	"maps"

	"github.com/SergeyBogomolovv/ride-dispatch/internal/entities"
)

// Documents persists a whole profile document at once, there are no partial updates.
type Documents[P any] interface {
	Load(ctx context.Context) (map[string]P, error)
	Save(ctx context.Context, docs map[string]P) error
}

// ProfileStore caches the last known profile per phone and writes the full
// document to its backend after every change. It is not safe for concurrent use.
type ProfileStore[P entities.Profile] struct {
	logger   *slog.Logger
	kind     string
	docs     Documents[P]
	profiles map[string]P

	// есть изменения, которые еще не записаны в backend
	dirty bool
}

func NewProfileStore[P entities.Profile](logger *slog.Logger, kind string, docs Documents[P]) *ProfileStore[P] {
	return &ProfileStore[P]{
		logger:   logger.With(slog.String("profiles", kind)),
		kind:     kind,
		docs:     docs,
		profiles: make(map[string]P),
	}
}

func (s *ProfileStore[P]) Get(phone string) (P, bool) {
	p, ok := s.profiles[phone]
	return p, ok
}

// Put overwrites the profile for its phone. A failed flush is logged and counted
// but never returned: the in-memory value is already updated.
func (s *ProfileStore[P]) Put(ctx context.Context, p P) error {
	if p.Key() == "" {
		return entities.ErrPhoneRequired
	}
	s.profiles[p.Key()] = p
	s.dirty = true

	if err := s.Flush(ctx); err != nil {
		profileFlushFailures.WithLabelValues(s.kind).Inc()
		s.logger.ErrorContext(ctx, "failed to flush profiles", slog.Any("error", err))
	}
	return nil
}

// Load replaces the cache with the persisted document. An unreadable document
// leaves the store empty.
func (s *ProfileStore[P]) Load(ctx context.Context) {
	docs, err := s.docs.Load(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load profiles, starting empty", slog.Any("error", err))
		s.profiles = make(map[string]P)
		s.dirty = false
		return
	}
	if docs == nil {
		docs = make(map[string]P)
	}
	s.profiles = docs
	s.dirty = false
	s.logger.InfoContext(ctx, "profiles loaded", slog.Int("count", len(docs)))
}

func (s *ProfileStore[P]) Flush(ctx context.Context) error {
	if err := s.docs.Save(ctx, maps.Clone(s.profiles)); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

// FlushIfDirty writes the document only when it has unsaved changes. A store that
// failed to load stays clean, so it never overwrites the persisted document with nothing.
func (s *ProfileStore[P]) FlushIfDirty(ctx context.Context) error {
	if !s.dirty {
		return nil
	}
	return s.Flush(ctx)
}

func (s *ProfileStore[P]) Len() int {
	return len(s.profiles)
}
