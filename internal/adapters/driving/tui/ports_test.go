package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/manex-cli/internal/core/domain"
)

// MockBrowseService implements driving.BrowseService for testing.
type MockBrowseService struct {
	SectionsFunc func(ctx context.Context) ([]domain.Section, error)
	FilterFunc   func(sections []domain.Section, query string) []domain.Section
	ChangesFunc  func() <-chan struct{}
}

func (m *MockBrowseService) Sections(ctx context.Context) ([]domain.Section, error) {
	if m.SectionsFunc != nil {
		return m.SectionsFunc(ctx)
	}
	return nil, nil
}

func (m *MockBrowseService) Filter(sections []domain.Section, query string) []domain.Section {
	if m.FilterFunc != nil {
		return m.FilterFunc(sections, query)
	}
	return sections
}

func (m *MockBrowseService) Changes() <-chan struct{} {
	if m.ChangesFunc != nil {
		return m.ChangesFunc()
	}
	return nil
}

// MockPageService implements driving.PageService for testing.
type MockPageService struct {
	LoadFunc func(ctx context.Context, page domain.Page) (string, error)
}

func (m *MockPageService) Load(ctx context.Context, page domain.Page) (string, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, page)
	}
	return "", nil
}

func TestNewPorts(t *testing.T) {
	browse := &MockBrowseService{}
	page := &MockPageService{}

	ports := NewPorts(browse, page)

	require.NotNil(t, ports)
	assert.Equal(t, browse, ports.Browse)
	assert.Equal(t, page, ports.Page)
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ports   *Ports
		wantErr error
	}{
		{
			name:    "valid ports",
			ports:   NewPorts(&MockBrowseService{}, &MockPageService{}),
			wantErr: nil,
		},
		{
			name:    "missing browse service",
			ports:   &Ports{Page: &MockPageService{}},
			wantErr: ErrMissingBrowseService,
		},
		{
			name:    "missing page service",
			ports:   &Ports{Browse: &MockBrowseService{}},
			wantErr: ErrMissingPageService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
