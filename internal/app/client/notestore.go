package client

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/note"
)

// ErrNoteMissing возвращается при попытке редактировать несуществующую заметку.
var ErrNoteMissing = errors.New("note not found in local collection")

const saveTimeout = 30 * time.Second

// NoteStore держит рабочую копию заметок пользователя. Правки применяются к
// локальной копии сразу, а на сервер уходят отложенно: каждая следующая правка
// той же заметки сбрасывает и перезапускает её таймер, так что сохраняется
// только последнее состояние после паузы во вводе.
//
// Каждой отправке присваивается монотонный номер на заметку. Ответ сервера
// применяется только если его номер новее последнего применённого, поэтому
// запоздавший ответ старой отправки не может затереть более свежие данные.
type NoteStore struct {
	api      *httpClient
	storage  *SQLiteStorage
	log      *slog.Logger
	debounce time.Duration

	// onUnauthorized вызывается при 401 от сервера, поверх него навешивается
	// сброс сессии.
	onUnauthorized func()

	mu      sync.Mutex
	notes   []note.View
	pending map[string]*pendingSave
	applied map[string]uint64
	nextRev map[string]uint64
	wg      sync.WaitGroup
	closed  bool
}

type pendingSave struct {
	timer    *time.Timer
	revision uint64
	content  string
}

func NewNoteStore(api *httpClient, storage *SQLiteStorage, debounce time.Duration, onUnauthorized func(), log *slog.Logger) *NoteStore {
	return &NoteStore{
		api:            api,
		storage:        storage,
		log:            log.With("component", "note_store"),
		debounce:       debounce,
		onUnauthorized: onUnauthorized,
		pending:        make(map[string]*pendingSave),
		applied:        make(map[string]uint64),
		nextRev:        make(map[string]uint64),
	}
}

// Load заменяет локальную коллекцию актуальным списком с сервера. При сетевой
// ошибке коллекция восстанавливается из локального кэша.
func (s *NoteStore) Load(ctx context.Context) ([]note.View, error) {
	notes, err := s.api.ListNotes(ctx)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			s.onUnauthorized()
			return nil, err
		}

		cached, cacheErr := s.storage.ListNotes()
		if cacheErr != nil {
			return nil, err
		}
		s.log.Warn("server unavailable, using cached notes", "error", err)

		s.setNotes(cached)
		return cached, nil
	}

	s.setNotes(notes)

	if err := s.storage.ReplaceNotes(notes); err != nil {
		s.log.Warn("failed to refresh local cache", "error", err)
	}

	return notes, nil
}

func (s *NoteStore) setNotes(notes []note.View) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = append([]note.View(nil), notes...)
	s.sortLocked()
}

// Notes возвращает снимок коллекции, новые сверху.
func (s *NoteStore) Notes() []note.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]note.View(nil), s.notes...)
}

// Create создает заметку на сервере сразу, без дебаунса, и вставляет
// результат в начало коллекции.
func (s *NoteStore) Create(ctx context.Context, content string) (*note.View, error) {
	n, err := s.api.CreateNote(ctx, content)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			s.onUnauthorized()
		}
		return nil, err
	}

	s.mu.Lock()
	s.notes = append([]note.View{*n}, s.notes...)
	s.mu.Unlock()

	if err := s.storage.UpsertNote(*n); err != nil {
		s.log.Warn("failed to cache created note", "error", err)
	}

	return n, nil
}

// Edit применяет правку к локальной копии и откладывает отправку на сервер.
// Повторная правка той же заметки до истечения паузы отменяет предыдущий
// таймер и запускает новый.
func (s *NoteStore) Edit(noteID, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(noteID)
	if idx < 0 {
		return ErrNoteMissing
	}
	s.notes[idx].Content = content

	s.nextRev[noteID]++
	revision := s.nextRev[noteID]

	// wg учитывает отправку с момента постановки таймера. Счётчик снимает
	// либо сам колбэк, либо тот, кто успел остановить таймер.
	s.wg.Add(1)
	if p, ok := s.pending[noteID]; ok && p.timer.Stop() {
		s.wg.Done()
	}

	p := &pendingSave{revision: revision, content: content}
	p.timer = time.AfterFunc(s.debounce, func() {
		defer s.wg.Done()
		s.save(noteID, content, revision)
	})
	s.pending[noteID] = p

	return nil
}

func (s *NoteStore) save(noteID, content string, revision uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	n, err := s.api.UpdateNote(ctx, noteID, content)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			s.onUnauthorized()
			return
		}
		s.log.Error("failed to save note", "note_id", noteID, "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Ответ более старой отправки пришёл позже свежего: игнорируем его.
	if revision <= s.applied[noteID] {
		return
	}
	s.applied[noteID] = revision

	if p, ok := s.pending[noteID]; ok && p.revision == revision {
		delete(s.pending, noteID)
	}

	idx := s.indexLocked(noteID)
	if idx < 0 {
		return
	}

	s.notes[idx].CreatedAt = n.CreatedAt
	s.notes[idx].UpdatedAt = n.UpdatedAt
	// Пока есть несохранённая более новая правка, локальный текст новее
	// серверного.
	if s.nextRev[noteID] == revision {
		s.notes[idx].Content = n.Content
	}
	s.sortLocked()

	if err := s.storage.UpsertNote(s.notes[idx]); err != nil {
		s.log.Warn("failed to cache saved note", "error", err)
	}
}

// Delete удаляет заметку сначала на сервере и только после успешного ответа
// убирает её из локальной коллекции.
func (s *NoteStore) Delete(ctx context.Context, noteID string) error {
	s.cancelPending(noteID)

	if err := s.api.DeleteNote(ctx, noteID); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			s.onUnauthorized()
		}
		return err
	}

	s.mu.Lock()
	if idx := s.indexLocked(noteID); idx >= 0 {
		s.notes = append(s.notes[:idx], s.notes[idx+1:]...)
	}
	delete(s.nextRev, noteID)
	delete(s.applied, noteID)
	s.mu.Unlock()

	if err := s.storage.DeleteNote(noteID); err != nil {
		s.log.Warn("failed to evict deleted note from cache", "error", err)
	}

	return nil
}

// Search ищет на сервере; при сетевой ошибке отвечает локальным поиском по
// подстроке в кэше.
func (s *NoteStore) Search(ctx context.Context, query string, prefix bool) ([]note.View, error) {
	notes, err := s.api.SearchNotes(ctx, query, prefix)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			s.onUnauthorized()
			return nil, err
		}

		cached, cacheErr := s.storage.SearchLocal(query)
		if cacheErr != nil {
			return nil, err
		}
		s.log.Warn("server search unavailable, using local cache", "error", err)
		return cached, nil
	}

	return notes, nil
}

// Flush немедленно отправляет все отложенные сохранения и дожидается их.
func (s *NoteStore) Flush() {
	s.mu.Lock()
	saves := make([]*pendingSave, 0, len(s.pending))
	ids := make([]string, 0, len(s.pending))
	for id, p := range s.pending {
		if p.timer.Stop() {
			saves = append(saves, p)
			ids = append(ids, id)
		}
	}
	s.mu.Unlock()

	for i, p := range saves {
		// Счётчик за эту отправку уже взят в Edit.
		noteID, revision, content := ids[i], p.revision, p.content
		go func() {
			defer s.wg.Done()
			s.save(noteID, content, revision)
		}()
	}

	s.wg.Wait()
}

// Close останавливает стор, отправив несохранённые правки.
func (s *NoteStore) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.Flush()
}

func (s *NoteStore) cancelPending(noteID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.pending[noteID]; ok {
		if p.timer.Stop() {
			s.wg.Done()
		}
		delete(s.pending, noteID)
	}
}

func (s *NoteStore) indexLocked(noteID string) int {
	for i, n := range s.notes {
		if n.ID == noteID {
			return i
		}
	}
	return -1
}

// sortLocked держит коллекцию отсортированной: новые сверху, при равных
// временах порядок стабилизируется по id.
func (s *NoteStore) sortLocked() {
	sort.SliceStable(s.notes, func(i, j int) bool {
		if !s.notes[i].UpdatedAt.Equal(s.notes[j].UpdatedAt) {
			return s.notes[i].UpdatedAt.After(s.notes[j].UpdatedAt)
		}
		return s.notes[i].ID > s.notes[j].ID
	})
}
