package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/manex-cli/internal/core/domain"
)

func TestSectionsCmd_Use(t *testing.T) {
	assert.Equal(t, "sections", sectionsCmd.Use)
}

func TestSectionsCmd_HasJSONFlag(t *testing.T) {
	flag := sectionsCmd.Flags().Lookup("json")
	require.NotNil(t, flag, "json flag should exist")
	assert.Equal(t, "false", flag.DefValue)
}

func TestSectionsCmd_ListsCounts(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"sections"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "2 pages")
	assert.Contains(t, out, "3 pages in 2 sections")
}

func TestSectionsCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"sections", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		sectionsJSON = false
	}()

	err := rootCmd.Execute()
	require.NoError(t, err)

	var sections []domain.Section
	require.NoError(t, json.Unmarshal(buf.Bytes(), &sections))
	require.Len(t, sections, 2)
	assert.Equal(t, "1", sections[0].ID)
	assert.Equal(t, "cat", sections[0].Pages[0].Name)
}
