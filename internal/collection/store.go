// Package collection хранит коллекции ресурсов, с которыми работают страницы,
// и применяет к ним оптимистичные мутации редактора.
package collection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"rb-admin-console/internal/backend"
	"rb-admin-console/internal/detail"
	"rb-admin-console/internal/domain"
	repoInterface "rb-admin-console/internal/repository/interface"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrDeclined = errors.New("action declined")
	// ErrStale - пока шла загрузка, была начата более новая; результат отброшен
	ErrStale = errors.New("stale response discarded")
)

// Remote - операции бэкенда, которые нужны хранилищу
type Remote interface {
	Configured() bool
	Load(ctx context.Context, res *domain.Resource, token string, params url.Values) (backend.Collection, error)
	Get(ctx context.Context, res *domain.Resource, token, id string) (domain.Record, error)
	Create(ctx context.Context, res *domain.Resource, token string, rec domain.Record) (domain.Record, error)
	Update(ctx context.Context, res *domain.Resource, token, id string, rec domain.Record) (domain.Record, error)
	Delete(ctx context.Context, res *domain.Resource, token, id string) error
}

// Confirmer - синхронный запрос подтверждения деструктивного действия
type Confirmer func(prompt string) bool

// Snapshot - состояние коллекции на момент чтения
type Snapshot struct {
	Items   []domain.Record
	Total   int
	Loaded  bool
	LastErr error
}

// Store - коллекция одного ресурса.
// Записи не меняются на месте: мутация заменяет элемент новой картой,
// поэтому выданные снимки можно читать без блокировки.
type Store struct {
	res     *domain.Resource
	remote  Remote
	journal repoInterface.JournalRepository
	metrics *backend.Metrics

	mu      sync.RWMutex
	items   []domain.Record
	total   int
	loaded  bool
	lastErr error
	gen     uint64
}

// NewStore создает хранилище ресурса. remote и journal могут быть nil.
func NewStore(res *domain.Resource, remote Remote, journal repoInterface.JournalRepository, metrics *backend.Metrics) *Store {
	return &Store{
		res:     res,
		remote:  remote,
		journal: journal,
		metrics: metrics,
	}
}

func (s *Store) Resource() *domain.Resource {
	return s.res
}

// Online сообщает, что коллекция живет на бэкенде, а не в статическом наборе
func (s *Store) Online() bool {
	return s.res.Remote() && s.remote != nil && s.remote.Configured()
}

// Snapshot возвращает текущие записи
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Items:   append([]domain.Record(nil), s.items...),
		Total:   s.total,
		Loaded:  s.loaded,
		LastErr: s.lastErr,
	}
}

// EnsureLoaded загружает коллекцию при первом обращении
func (s *Store) EnsureLoaded(ctx context.Context, token string, params url.Values) {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return
	}
	_ = s.Refresh(ctx, token, params)
}

// Refresh перезагружает коллекцию целиком.
// Каждая загрузка получает номер поколения; ответ устаревшего поколения отбрасывается.
// При ошибке остается последнее удачное состояние и выставляется LastErr.
// Ответ 401 приходит как пустая коллекция и заменяет состояние.
func (s *Store) Refresh(ctx context.Context, token string, params url.Values) error {
	if !s.Online() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.loaded {
			s.items = s.res.SeedRecords()
			s.total = len(s.items)
			s.loaded = true
		}
		return nil
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	coll, err := s.remote.Load(ctx, s.res, token, params)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		s.metrics.Stale(s.res.Name)
		log.Debug().Str("resource", s.res.Name).Uint64("generation", gen).Msg("stale response discarded")
		return ErrStale
	}
	if err != nil {
		s.lastErr = err
		log.Warn().Err(err).Str("resource", s.res.Name).Msg("failed to refresh collection, keeping last state")
		return err
	}
	s.items = coll.Items
	s.total = coll.Total
	s.loaded = true
	s.lastErr = nil
	return nil
}

// Find ищет запись по идентификатору ресурса
func (s *Store) Find(id string) domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.items[i]
	}
	return nil
}

// Fetch возвращает запись для страницы деталей: запрос к бэкенду, если он есть,
// иначе (или если бэкенд записи не знает) поиск по локальному списку по id, _id или uuid.
func (s *Store) Fetch(ctx context.Context, token, id string) domain.Record {
	if s.Online() {
		rec, err := s.remote.Get(ctx, s.res, token, id)
		if err != nil {
			log.Warn().Err(err).Str("resource", s.res.Name).Str("id", id).Msg("failed to fetch record")
		}
		if rec != nil {
			return rec
		}
	} else {
		s.EnsureLoaded(ctx, token, nil)
	}
	return detail.Lookup(s.Snapshot().Items, id)
}

func (s *Store) indexOf(id string) int {
	for i, r := range s.items {
		if r.IDString(s.res.IDField) == id {
			return i
		}
	}
	return -1
}

// Create добавляет запись: локально сразу, удаленно по возможности.
func (s *Store) Create(ctx context.Context, token string, rec domain.Record) (domain.Record, error) {
	rec = rec.Clone()
	now := domain.Now()

	s.mu.Lock()
	rec[s.res.IDField] = NextID(s.items, s.res.IDField, s.res.IDKind)
	rec["created_at"] = now
	rec["updated_at"] = now
	s.items = append(s.items, rec)
	s.total++
	s.loaded = true
	s.mu.Unlock()

	localID := rec.IDString(s.res.IDField)

	if s.res.Writable && s.Online() {
		created, err := s.remote.Create(ctx, s.res, token, withoutID(rec, s.res.IDField))
		if err != nil {
			log.Warn().Err(err).Str("resource", s.res.Name).Msg("remote create failed, keeping local record")
			s.journalize(ctx, domain.ActionCreate, localID, rec, err.Error())
			return rec, nil
		}
		if serverID := created.IDString(s.res.IDField); serverID != "" {
			merged := rec.Clone()
			for k, v := range created {
				merged[k] = v
			}
			s.replace(localID, merged)
			return merged, nil
		}
		return rec, nil
	}

	s.journalize(ctx, domain.ActionCreate, localID, rec, "no remote create endpoint")
	return rec, nil
}

// Update заменяет запись с тем же идентификатором
func (s *Store) Update(ctx context.Context, token string, rec domain.Record) (domain.Record, error) {
	rec = rec.Clone()
	id := rec.IDString(s.res.IDField)
	rec["updated_at"] = domain.Now()

	if !s.replace(id, rec) {
		return nil, ErrNotFound
	}

	if s.res.Writable && s.Online() {
		if _, err := s.remote.Update(ctx, s.res, token, id, rec); err != nil {
			log.Warn().Err(err).Str("resource", s.res.Name).Str("id", id).Msg("remote update failed, keeping local record")
			s.journalize(ctx, domain.ActionUpdate, id, rec, err.Error())
		}
		return rec, nil
	}

	s.journalize(ctx, domain.ActionUpdate, id, rec, "no remote update endpoint")
	return rec, nil
}

// Delete удаляет запись после подтверждения. Отказ - ErrDeclined без побочных эффектов.
func (s *Store) Delete(ctx context.Context, token, id string, confirm Confirmer) error {
	if confirm == nil || !confirm(DeletePrompt(s.res, id)) {
		return ErrDeclined
	}

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	removed := s.items[i]
	s.items = append(append([]domain.Record(nil), s.items[:i]...), s.items[i+1:]...)
	if s.total > 0 {
		s.total--
	}
	s.mu.Unlock()

	if s.res.Writable && s.Online() {
		if err := s.remote.Delete(ctx, s.res, token, id); err != nil {
			log.Warn().Err(err).Str("resource", s.res.Name).Str("id", id).Msg("remote delete failed")
			s.journalize(ctx, domain.ActionDelete, id, removed, err.Error())
		}
		return nil
	}

	s.journalize(ctx, domain.ActionDelete, id, removed, "no remote delete endpoint")
	return nil
}

// DeletePrompt - текст подтверждения удаления
func DeletePrompt(res *domain.Resource, id string) string {
	return fmt.Sprintf("Delete %s %s?", strings.ToLower(res.Title), id)
}

func (s *Store) replace(id string, rec domain.Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	items := append([]domain.Record(nil), s.items...)
	items[i] = rec
	s.items = items
	return true
}

func (s *Store) journalize(ctx context.Context, action, id string, rec domain.Record, reason string) {
	if s.journal == nil {
		log.Info().Str("resource", s.res.Name).Str("action", action).Str("id", id).Msg("intended remote call skipped")
		return
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		payload = nil
	}
	entry := &domain.JournalEntry{
		Resource: s.res.Name,
		Action:   action,
		RecordID: id,
		Payload:  payload,
		Reason:   reason,
	}
	if err := s.journal.Record(ctx, entry); err != nil {
		log.Error().Err(err).Str("resource", s.res.Name).Str("action", action).Msg("failed to journal mutation")
	}
}

func withoutID(rec domain.Record, field string) domain.Record {
	out := rec.Clone()
	delete(out, field)
	return out
}
