package mannequins

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"fitcheck-backend/internal/measurements"
	"fitcheck-backend/internal/shared/storage/object"
)

type fakeGenerator struct {
	calls   atomic.Int32
	body    []byte
	err     error
	lastReq GenerateRequest
	mu      sync.Mutex
	entered chan struct{}
	release chan struct{}
}

func (g *fakeGenerator) Generate(ctx context.Context, req GenerateRequest) (io.ReadCloser, error) {
	g.calls.Add(1)
	g.mu.Lock()
	g.lastReq = req
	g.mu.Unlock()
	if g.entered != nil {
		g.entered <- struct{}{}
	}
	if g.release != nil {
		select {
		case <-g.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if g.err != nil {
		return nil, g.err
	}
	return io.NopCloser(bytes.NewReader(g.body)), nil
}

type fakeStore struct {
	mu       sync.Mutex
	objects  map[string][]byte
	types    map[string]string
	puts     int
	putErr   error
	urlErr   error
	emptyURL bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (s *fakeStore) Put(ctx context.Context, key string, contentType string, r io.Reader) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puts++
	if s.putErr != nil {
		return 0, s.putErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	s.objects[key] = data
	s.types[key] = contentType
	return int64(len(data)), nil
}

func (s *fakeStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, errors.New("missing object")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStore) PublicURL(key string) (string, error) {
	if s.urlErr != nil {
		return "", s.urlErr
	}
	if s.emptyURL {
		return "", nil
	}
	return object.JoinURL("https://cdn.example.com/mannequins", key), nil
}

func (s *fakeStore) putCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.puts
}

type failingRecords struct {
	*measurements.MemoryRepo
	getErr  error
	markErr error
}

func (r failingRecords) GetByID(ctx context.Context, id string) (measurements.Measurement, error) {
	if r.getErr != nil {
		return measurements.Measurement{}, r.getErr
	}
	return r.MemoryRepo.GetByID(ctx, id)
}

func (r failingRecords) MarkGenerated(ctx context.Context, id, url string, at time.Time) error {
	if r.markErr != nil {
		return r.markErr
	}
	return r.MemoryRepo.MarkGenerated(ctx, id, url, at)
}

func seededRepo(ids ...string) *measurements.MemoryRepo {
	repo := measurements.NewMemoryRepo()
	waist := 80.0
	for _, id := range ids {
		_ = repo.Create(context.Background(), measurements.Measurement{
			ID:              id,
			Email:           "a@b.co",
			HeightCM:        172,
			WaistCM:         &waist,
			MannequinStatus: measurements.StatusAbsent,
			CreatedAt:       time.Now().UTC(),
		})
	}
	return repo
}
