package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_String(t *testing.T) {
	p := Page{Name: "ls", Section: "1"}
	assert.Equal(t, "ls.1", p.String())
}

func TestParsePageEntry(t *testing.T) {
	tests := []struct {
		name    string
		entry   string
		want    Page
		wantErr bool
	}{
		{name: "simple", entry: "ls.1", want: Page{Name: "ls", Section: "1"}},
		{name: "subsection", entry: "Carp.3pm", want: Page{Name: "Carp", Section: "3pm"}},
		{name: "dotted name", entry: "systemd.unit.5", want: Page{Name: "systemd.unit", Section: "5"}},
		{name: "no dot", entry: "whatis", wantErr: true},
		{name: "trailing dot", entry: "ls.", wantErr: true},
		{name: "leading dot", entry: ".1", wantErr: true},
		{name: "empty", entry: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePageEntry(tt.entry)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageCount(t *testing.T) {
	sections := []Section{
		{ID: "1", Pages: []Page{{Name: "ls", Section: "1"}, {Name: "cp", Section: "1"}}},
		{ID: "8", Pages: []Page{{Name: "mount", Section: "8"}}},
	}
	assert.Equal(t, 3, PageCount(sections))
	assert.Equal(t, 0, PageCount(nil))
}
