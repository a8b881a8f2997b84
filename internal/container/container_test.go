package container

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Storage.File = filepath.Join(t.TempDir(), "expenses.csv")
	cfg.Report.Format = "text"
	return cfg
}

func TestNewContainer(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		c, err := NewContainer(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration cannot be nil")
		assert.Nil(t, c)
	})

	t.Run("valid config with missing file", func(t *testing.T) {
		cfg := testConfig(t)
		c, err := NewContainer(cfg)
		require.NoError(t, err)

		assert.Same(t, cfg, c.GetConfig())
		assert.NotNil(t, c.GetLogger())
		assert.NotNil(t, c.GetReportGenerator())
		require.NotNil(t, c.GetStore())
		assert.Equal(t, cfg.Storage.File, c.GetStore().Path())
		assert.Equal(t, 0, c.GetStore().Len())
	})

	t.Run("unreadable store path", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Storage.File = t.TempDir()

		_, err := NewContainer(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open expense store")
	})
}

func TestNewContainerWithLogger_NilLogger(t *testing.T) {
	_, err := NewContainerWithLogger(testConfig(t), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logger cannot be nil")
}

func TestNewContainerWithLogger_LoadsExistingFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.CSV.LegacyEscape = true
	logger := logging.NewMockLogger()

	first, err := NewContainerWithLogger(cfg, logger)
	require.NoError(t, err)
	e := models.NewExpense(models.ExpenseInput{
		Date:        mustDate(t, "2024-03-01"),
		Category:    "Food",
		Description: "bread, butter",
		Amount:      models.MustParseAmount("4.20"),
	})
	require.NoError(t, first.GetStore().Add(e))

	raw, err := os.ReadFile(cfg.Storage.File)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "bread; butter")

	second, err := NewContainerWithLogger(cfg, logger)
	require.NoError(t, err)
	got, ok := second.GetStore().GetByID(e.ID)
	require.True(t, ok)
	assert.Equal(t, "bread, butter", got.Description)
	assert.True(t, logger.HasEntry("DEBUG", "Container initialized"))
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := dateutils.ParseISODate(s)
	require.NoError(t, err)
	return d
}
