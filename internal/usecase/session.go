// Package usecase owns the top-level editing session: the resume document,
// the auth state, theme preference and the debounced backend sync.
package usecase

import (
	"context"
	"encoding/json"
	"regexp"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resume-builder/internal/model"
	"resume-builder/internal/store"
)

// Backend is the slice of the REST client the session needs.
type Backend interface {
	CreateResume(ctx context.Context, r model.Resume) (model.Resume, error)
	UpdateResume(ctx context.Context, id string, r model.Resume) (model.Resume, error)
	GetMyResumes(ctx context.Context) ([]model.Resume, error)
}

const defaultDebounce = 2 * time.Second

// Session funnels every document mutation through Apply: the snapshot store
// is written synchronously, and when a session token exists a debounce timer
// is restarted so rapid edits coalesce into a single backend write.
type Session struct {
	store    *store.Store
	backend  Backend
	log      *zap.Logger
	debounce time.Duration

	mu       sync.Mutex
	doc      model.Resume
	template string
	authed   bool
	saving   bool
	timer    *time.Timer
}

type Option func(*Session)

func WithDebounce(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.debounce = d
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Session) { s.log = log }
}

func NewSession(st *store.Store, backend Backend, opts ...Option) *Session {
	s := &Session{
		store:    st,
		backend:  backend,
		log:      zap.NewNop(),
		debounce: defaultDebounce,
		doc:      model.NewEmptyResume(),
		template: "Modern",
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load restores the document: the backend's first resume when a session
// token exists, otherwise the local snapshot merged over an empty document.
// A corrupt snapshot resets to empty rather than failing the session.
func (s *Session) Load(ctx context.Context) {
	if s.Authenticated() && s.backend != nil {
		resumes, err := s.backend.GetMyResumes(ctx)
		if err == nil && len(resumes) > 0 {
			s.mu.Lock()
			s.doc = resumes[0].Normalize()
			s.mu.Unlock()
			s.writeSnapshot()
			return
		}
		if err != nil {
			s.log.Warn("failed to load resumes from backend", zap.Error(err))
		}
	}
	s.loadLocal()
}

func (s *Session) loadLocal() {
	raw, ok, err := s.store.Get(store.KeyResume)
	if err != nil || !ok {
		return
	}
	var saved model.Resume
	if jerr := json.Unmarshal(raw, &saved); jerr != nil {
		s.log.Warn("corrupt local snapshot, starting empty", zap.Error(jerr))
		s.mu.Lock()
		s.doc = model.NewEmptyResume()
		s.mu.Unlock()
		return
	}
	s.mu.Lock()
	s.doc = saved.Normalize()
	s.mu.Unlock()
}

// Document returns a copy of the current document.
func (s *Session) Document() model.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// Apply mutates the document through fn (the updater-function form, so
// concurrent callers always see the current state), snapshots it and
// schedules the debounced backend sync.
func (s *Session) Apply(fn func(model.Resume) model.Resume) {
	s.mu.Lock()
	s.doc = fn(s.doc).Normalize()
	authed := s.authed
	s.mu.Unlock()

	s.writeSnapshot()

	if authed && s.backend != nil {
		s.scheduleSave()
	}
}

func (s *Session) writeSnapshot() {
	s.mu.Lock()
	doc := s.doc
	s.mu.Unlock()
	if err := s.store.SetJSON(store.KeyResume, doc); err != nil {
		s.log.Warn("snapshot write failed", zap.Error(err))
	}
}

func (s *Session) scheduleSave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() { s.save(context.Background()) })
}

var mongoIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// persistedID reports whether id looks server-assigned (hex object id or
// UUID) rather than a client-generated timestamp.
func persistedID(id string) bool {
	if mongoIDPattern.MatchString(id) {
		return true
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// save pushes the latest document: update when the id looks persisted,
// otherwise create and adopt the returned id so the next save does not
// create a duplicate.
func (s *Session) save(ctx context.Context) {
	s.mu.Lock()
	doc := s.doc
	s.saving = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.saving = false
		s.mu.Unlock()
	}()

	if persistedID(doc.ID) {
		saved, err := s.backend.UpdateResume(ctx, doc.ID, doc)
		if err != nil {
			s.log.Warn("auto-save update failed", zap.Error(err))
			return
		}
		// the client may have recovered a forbidden update by re-creating
		// the document; adopt the new id or the next save repeats the dance
		s.adoptID(saved.ID, doc.ID)
		return
	}

	saved, err := s.backend.CreateResume(ctx, doc)
	if err != nil {
		s.log.Warn("auto-save create failed", zap.Error(err))
		return
	}
	s.adoptID(saved.ID, doc.ID)
}

func (s *Session) adoptID(got, sent string) {
	if got == "" || got == sent {
		return
	}
	s.mu.Lock()
	s.doc.ID = got
	s.mu.Unlock()
	s.writeSnapshot()
}

// Flush runs any pending save immediately. Used on shutdown.
func (s *Session) Flush(ctx context.Context) {
	s.mu.Lock()
	pending := s.timer != nil && s.timer.Stop()
	authed := s.authed
	s.mu.Unlock()
	if pending && authed && s.backend != nil {
		s.save(ctx)
	}
}

// Saving reports whether a backend write is in flight.
func (s *Session) Saving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saving
}

// Authenticated reports whether a session token is stored.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	if s.authed {
		s.mu.Unlock()
		return true
	}
	s.mu.Unlock()
	_, ok, _ := s.store.Get(store.KeyToken)
	if ok {
		s.mu.Lock()
		s.authed = true
		s.mu.Unlock()
	}
	return ok
}

// SignIn stores the session token and display payload.
func (s *Session) SignIn(token string, user interface{}) error {
	if err := s.store.Set(store.KeyToken, []byte(token)); err != nil {
		return err
	}
	if err := s.store.SetJSON(store.KeyUserSession, user); err != nil {
		return err
	}
	s.mu.Lock()
	s.authed = true
	s.mu.Unlock()
	return nil
}

// Token returns the stored session token, empty when logged out.
func (s *Session) Token() string {
	raw, ok, _ := s.store.Get(store.KeyToken)
	if !ok {
		return ""
	}
	return string(raw)
}

// Logout clears the session keys and resets to an empty document.
func (s *Session) Logout() {
	_ = s.store.Delete(store.KeyToken)
	_ = s.store.Delete(store.KeyUserSession)
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.authed = false
	s.doc = model.NewEmptyResume()
	s.mu.Unlock()
	s.writeSnapshot()
}

// Template selection for the preview.
func (s *Session) Template() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.template
}

func (s *Session) SetTemplate(name string) {
	s.mu.Lock()
	s.template = name
	s.mu.Unlock()
}
