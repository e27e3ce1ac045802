package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/manex-cli/internal/core/domain"
)

// MockIndexer implements driven.SectionIndexer for testing.
type MockIndexer struct {
	SectionsFunc func(ctx context.Context) ([]domain.Section, error)
	calls        int
}

func (m *MockIndexer) Sections(ctx context.Context) ([]domain.Section, error) {
	m.calls++
	if m.SectionsFunc != nil {
		return m.SectionsFunc(ctx)
	}
	return nil, nil
}

// MockWatcher implements driven.IndexWatcher for testing.
type MockWatcher struct {
	ch     chan struct{}
	closed bool
}

func (m *MockWatcher) Events() <-chan struct{} { return m.ch }
func (m *MockWatcher) Close() error {
	m.closed = true
	return nil
}

func sampleSections() []domain.Section {
	return []domain.Section{
		{ID: "1", Pages: []domain.Page{
			{Name: "cp", Section: "1"},
			{Name: "ls", Section: "1"},
		}},
		{ID: "3", Pages: []domain.Page{
			{Name: "printf", Section: "3"},
		}},
		{ID: "8", Pages: []domain.Page{
			{Name: "lsmod", Section: "8"},
			{Name: "mount", Section: "8"},
		}},
	}
}

func TestBrowseService_SectionsCached(t *testing.T) {
	mock := &MockIndexer{
		SectionsFunc: func(ctx context.Context) ([]domain.Section, error) {
			return sampleSections(), nil
		},
	}
	svc := NewBrowseService(mock)

	first, err := svc.Sections(context.Background())
	require.NoError(t, err)
	assert.Len(t, first, 3)

	_, err = svc.Sections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, mock.calls, "second call should hit the cache")

	svc.Invalidate()
	_, err = svc.Sections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, mock.calls, "invalidation should force re-enumeration")
}

func TestBrowseService_SectionsError(t *testing.T) {
	mock := &MockIndexer{
		SectionsFunc: func(ctx context.Context) ([]domain.Section, error) {
			return nil, errors.New("manpath failed")
		},
	}
	svc := NewBrowseService(mock)

	_, err := svc.Sections(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing manual sections")
}

func TestBrowseService_Filter(t *testing.T) {
	svc := NewBrowseService(&MockIndexer{})
	sections := sampleSections()

	tests := []struct {
		name  string
		query string
		want  int // total pages after filtering
	}{
		{name: "empty query returns everything", query: "", want: 5},
		{name: "whitespace query returns everything", query: "  ", want: 5},
		{name: "substring across sections", query: "ls", want: 2}, // ls.1 and lsmod.8
		{name: "case-insensitive", query: "MOUNT", want: 1},
		{name: "section suffix matches too", query: ".8", want: 2},
		{name: "no hits", query: "zzz", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Filter(sections, tt.query)
			assert.Equal(t, tt.want, domain.PageCount(got))
			for _, sec := range got {
				assert.NotEmpty(t, sec.Pages, "empty sections must be dropped")
			}
		})
	}
}

func TestBrowseService_FilterDoesNotMutateInput(t *testing.T) {
	svc := NewBrowseService(&MockIndexer{})
	sections := sampleSections()

	svc.Filter(sections, "ls")
	assert.Equal(t, sampleSections(), sections)
}

func TestBrowseService_WatcherInvalidates(t *testing.T) {
	mock := &MockIndexer{
		SectionsFunc: func(ctx context.Context) ([]domain.Section, error) {
			return sampleSections(), nil
		},
	}
	watcher := &MockWatcher{ch: make(chan struct{}, 1)}
	svc := NewBrowseService(mock).WithWatcher(watcher)
	defer svc.Close()

	_, err := svc.Sections(context.Background())
	require.NoError(t, err)

	watcher.ch <- struct{}{}

	// The watcher goroutine invalidates asynchronously.
	assert.Eventually(t, func() bool {
		_, err := svc.Sections(context.Background())
		return err == nil && mock.calls == 2
	}, time.Second, 10*time.Millisecond)
}

func TestBrowseService_ChangesSignalsConsumers(t *testing.T) {
	watcher := &MockWatcher{ch: make(chan struct{}, 1)}
	svc := NewBrowseService(&MockIndexer{}).WithWatcher(watcher)
	defer svc.Close()

	require.NotNil(t, svc.Changes())

	watcher.ch <- struct{}{}

	select {
	case <-svc.Changes():
	case <-time.After(time.Second):
		t.Fatal("expected a change notification")
	}
}

func TestBrowseService_ChangesNilWithoutWatcher(t *testing.T) {
	svc := NewBrowseService(&MockIndexer{})
	assert.Nil(t, svc.Changes())
}

func TestBrowseService_CloseStopsWatcher(t *testing.T) {
	watcher := &MockWatcher{ch: make(chan struct{})}
	svc := NewBrowseService(&MockIndexer{}).WithWatcher(watcher)

	require.NoError(t, svc.Close())
	assert.True(t, watcher.closed)
}
