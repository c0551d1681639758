package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_RejectsNonPositiveDurations(t *testing.T) {
	app := &App{}
	err := app.configure(rootOptions{workMinutes: 0, breakMinutes: 5, backend: "json"})
	assert.Error(t, err)

	err = app.configure(rootOptions{workMinutes: 25, breakMinutes: -1, backend: "json"})
	assert.Error(t, err)
}

func TestConfigure_RejectsUnknownBackend(t *testing.T) {
	app := &App{}
	err := app.configure(rootOptions{workMinutes: 25, breakMinutes: 5, backend: "csv"})
	assert.Error(t, err)
}

func TestConfigure_WiresJSONStore(t *testing.T) {
	app := &App{}
	path := filepath.Join(t.TempDir(), "sessions.json")

	require.NoError(t, app.configure(rootOptions{
		workMinutes:  25,
		breakMinutes: 5,
		dataPath:     path,
		backend:      "json",
	}))
	defer app.close()

	assert.Equal(t, domain.Config{WorkMinutes: 25, BreakMinutes: 5}, app.Config)
	require.NotNil(t, app.Store)
	require.NotNil(t, app.Sessions)

	log, err := app.Store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, log)
}

func TestConfigure_WiresSQLiteStore(t *testing.T) {
	app := &App{}
	path := filepath.Join(t.TempDir(), "pomo.db")

	require.NoError(t, app.configure(rootOptions{
		workMinutes:  25,
		breakMinutes: 5,
		dataPath:     path,
		backend:      "sqlite",
	}))
	defer app.close()

	log, err := app.Store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, log)
}
