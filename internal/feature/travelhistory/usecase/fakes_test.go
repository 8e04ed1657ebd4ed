package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"

	"travel_journal/internal/feature/travelhistory/domain/entity"
)

// fakeRepo is an in-memory HistoryRepository. Writes made inside RunInTx are
// staged and only become visible when fn returns nil and commitErr is nil.
type fakeRepo struct {
	mu      sync.Mutex
	nextID  uint
	entries []entity.TravelEntry
	media   []entity.MediaAttachment

	createErr     error
	addMediaErrAt int // 1-based AddMedia call that fails; 0 never
	commitErr     error
	txCalls       int

	ListByUserFunc func(ctx context.Context, userID uint) ([]entity.HistoryRow, error)
	ListAllFunc    func(ctx context.Context) ([]entity.HistoryRow, error)
	ListByAreaFunc func(ctx context.Context, area string) ([]entity.HistoryRow, error)
}

type fakeTx struct {
	repo     *fakeRepo
	entries  []entity.TravelEntry
	media    []entity.MediaAttachment
	addCalls int
}

func (t *fakeTx) CreateEntry(_ context.Context, e *entity.TravelEntry) error {
	if t.repo.createErr != nil {
		return t.repo.createErr
	}
	t.repo.nextID++
	e.ID = t.repo.nextID
	t.entries = append(t.entries, *e)
	return nil
}

func (t *fakeTx) AddMedia(_ context.Context, m *entity.MediaAttachment) error {
	t.addCalls++
	if t.repo.addMediaErrAt == t.addCalls {
		return errors.New("insert travel_media: constraint failed")
	}
	m.ID = uint(len(t.repo.media) + len(t.media) + 1)
	t.media = append(t.media, *m)
	return nil
}

func (r *fakeRepo) RunInTx(ctx context.Context, fn func(tx HistoryTx) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txCalls++

	tx := &fakeTx{repo: r}
	if err := fn(tx); err != nil {
		return err
	}
	if r.commitErr != nil {
		return r.commitErr
	}
	r.entries = append(r.entries, tx.entries...)
	r.media = append(r.media, tx.media...)
	return nil
}

func (r *fakeRepo) ListByUser(ctx context.Context, userID uint) ([]entity.HistoryRow, error) {
	if r.ListByUserFunc != nil {
		return r.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (r *fakeRepo) ListAll(ctx context.Context) ([]entity.HistoryRow, error) {
	if r.ListAllFunc != nil {
		return r.ListAllFunc(ctx)
	}
	return nil, nil
}

func (r *fakeRepo) ListByArea(ctx context.Context, area string) ([]entity.HistoryRow, error) {
	if r.ListByAreaFunc != nil {
		return r.ListByAreaFunc(ctx, area)
	}
	return nil, nil
}

// fakeMedia is an in-memory MediaStore.
type fakeMedia struct {
	mu        sync.Mutex
	files     map[string][]byte
	saveErrAt int // 1-based Save call that fails after writing half the body
	saveCalls int
	deleteErr error
	deleted   []string
}

func newFakeMedia() *fakeMedia {
	return &fakeMedia{files: map[string][]byte{}}
}

func (m *fakeMedia) Save(_ context.Context, name, _ string, _ int64, body io.Reader) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveCalls++

	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	if m.saveErrAt == m.saveCalls {
		m.files[name] = b[:len(b)/2]
		return errors.New("disk quota exceeded")
	}
	m.files[name] = b
	return nil
}

func (m *fakeMedia) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, name)
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.files, name)
	return nil
}

func (m *fakeMedia) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.files)
}

func imageUpload(name string) entity.Upload {
	data := []byte("\x89PNG fake image " + name)
	return entity.Upload{
		Filename:    name,
		ContentType: "image/png",
		Size:        int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

func imageUploads(n int) []entity.Upload {
	out := make([]entity.Upload, n)
	for i := range out {
		out[i] = imageUpload("photo.png")
	}
	return out
}
