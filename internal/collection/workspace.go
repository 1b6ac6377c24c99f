package collection

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"rb-admin-console/internal/backend"
	"rb-admin-console/internal/domain"
	repoInterface "rb-admin-console/internal/repository/interface"
)

// DefaultMaxSessions - ограничение числа сессий по умолчанию
const DefaultMaxSessions = 1000

// Workspace раздает хранилища ресурсов по сессиям.
// У каждого токена свой набор коллекций, как у отдельной вкладки браузера.
type Workspace struct {
	registry *domain.Registry
	remote   Remote
	journal  repoInterface.JournalRepository
	metrics  *backend.Metrics
	idle     time.Duration
	limit    int

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	stores   map[string]*Store
	lastSeen time.Time
}

// NewWorkspace создает рабочее пространство. idle <= 0 - сессии не вытесняются.
func NewWorkspace(registry *domain.Registry, remote Remote, journal repoInterface.JournalRepository, metrics *backend.Metrics, idle time.Duration) *Workspace {
	return &Workspace{
		registry: registry,
		remote:   remote,
		journal:  journal,
		metrics:  metrics,
		idle:     idle,
		limit:    DefaultMaxSessions,
		sessions: make(map[string]*session),
	}
}

// SetMaxSessions ограничивает число одновременных сессий; n <= 0 - без ограничения
func (w *Workspace) SetMaxSessions(n int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.limit = n
}

func (w *Workspace) Registry() *domain.Registry {
	return w.registry
}

// Store возвращает хранилище ресурса для сессии token
func (w *Workspace) Store(token, resource string) (*Store, error) {
	res, err := w.registry.Get(resource)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	sess, ok := w.sessions[token]
	if !ok {
		if w.limit > 0 && len(w.sessions) >= w.limit {
			w.evictOldest()
		}
		sess = &session{stores: make(map[string]*Store)}
		w.sessions[token] = sess
	}
	sess.lastSeen = time.Now()

	st, ok := sess.stores[resource]
	if !ok {
		st = NewStore(res, w.remote, w.journal, w.metrics)
		sess.stores[resource] = st
	}
	return st, nil
}

// evictOldest удаляет сессию с самым давним обращением. Вызывается под w.mu.
func (w *Workspace) evictOldest() {
	var oldest string
	var oldestSeen time.Time
	found := false
	for token, sess := range w.sessions {
		if !found || sess.lastSeen.Before(oldestSeen) {
			oldest, oldestSeen, found = token, sess.lastSeen, true
		}
	}
	if found {
		delete(w.sessions, oldest)
		log.Debug().Time("last_seen", oldestSeen).Msg("session evicted, workspace is full")
	}
}

// Sessions возвращает число активных сессий
func (w *Workspace) Sessions() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.sessions)
}

// Forget удаляет коллекции сессии (выход оператора)
func (w *Workspace) Forget(token string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.sessions, token)
}

// Sweep вытесняет сессии, к которым не обращались дольше idle
func (w *Workspace) Sweep(now time.Time) int {
	if w.idle <= 0 {
		return 0
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	evicted := 0
	for token, sess := range w.sessions {
		if now.Sub(sess.lastSeen) > w.idle {
			delete(w.sessions, token)
			evicted++
		}
	}
	return evicted
}

// Run периодически вызывает Sweep до отмены ctx
func (w *Workspace) Run(ctx context.Context) {
	if w.idle <= 0 {
		return
	}
	ticker := time.NewTicker(w.idle / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := w.Sweep(now); n > 0 {
				log.Debug().Int("sessions", n).Msg("idle sessions evicted")
			}
		}
	}
}
