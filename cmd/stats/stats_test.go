package stats

import (
	"bytes"
	"path/filepath"
	"testing"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newContainer(t *testing.T, format string) *container.Container {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Storage.File = filepath.Join(t.TempDir(), "expenses.csv")
	cfg.Report.Format = format
	c, err := container.NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)

	for _, r := range []struct{ date, amount string }{
		{"2024-01-01", "10"}, {"2024-01-01", "5"}, {"2024-01-08", "20"},
	} {
		d, err := dateutils.ParseISODate(r.date)
		require.NoError(t, err)
		require.NoError(t, c.GetStore().Add(models.NewExpense(models.ExpenseInput{
			Date: d, Category: "Food", Description: "meal", Amount: models.MustParseAmount(r.amount),
		})))
	}
	return c
}

func runWith(t *testing.T, c *container.Container, period string) []byte {
	t.Helper()
	by = period
	t.Cleanup(func() { by = PeriodAll })

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	require.NoError(t, runStats(cmd, c))
	return out.Bytes()
}

type row struct {
	Period string `yaml:"period"`
	Total  string `yaml:"total"`
	Count  int    `yaml:"count"`
}

func TestStatsCommand_Metadata(t *testing.T) {
	assert.Equal(t, "stats", Cmd.Use)
	flag := Cmd.Flags().Lookup("by")
	require.NotNil(t, flag)
	assert.Equal(t, PeriodAll, flag.DefValue)
}

func TestRunStats_SinglePeriod(t *testing.T) {
	c := newContainer(t, "yaml")

	var byDay []row
	require.NoError(t, yaml.Unmarshal(runWith(t, c, "day"), &byDay))
	assert.Equal(t, []row{{"2024-01-01", "15.00", 2}, {"2024-01-08", "20.00", 1}}, byDay)

	var byWeek []row
	require.NoError(t, yaml.Unmarshal(runWith(t, c, "WEEK"), &byWeek))
	assert.Equal(t, []row{{"2024-W01", "15.00", 2}, {"2024-W02", "20.00", 1}}, byWeek)

	var byMonth []row
	require.NoError(t, yaml.Unmarshal(runWith(t, c, "month"), &byMonth))
	assert.Equal(t, []row{{"2024-01", "35.00", 3}}, byMonth)
}

func TestRunStats_All(t *testing.T) {
	c := newContainer(t, "yaml")

	var all map[string][]row
	require.NoError(t, yaml.Unmarshal(runWith(t, c, PeriodAll), &all))
	assert.Len(t, all, 3)
	assert.Equal(t, []row{{"2024-01", "35.00", 3}}, all["month"])
}

func TestRunStats_UnknownPeriod(t *testing.T) {
	c := newContainer(t, "text")
	by = "year"
	t.Cleanup(func() { by = PeriodAll })

	err := runStats(&cobra.Command{}, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported period")
}

func TestRunStats_DateRange(t *testing.T) {
	c := newContainer(t, "yaml")
	period = common.RangeFlags{From: "2024-01-02"}
	t.Cleanup(func() { period = common.RangeFlags{} })

	var byMonth []row
	require.NoError(t, yaml.Unmarshal(runWith(t, c, "month"), &byMonth))
	assert.Equal(t, []row{{"2024-01", "20.00", 1}}, byMonth)

	mock, ok := c.GetLogger().(*logging.MockLogger)
	require.True(t, ok)
	found := false
	for _, entry := range mock.GetEntriesByLevel("DEBUG") {
		if entry.Message != "Computed statistics" {
			continue
		}
		found = true
		value, ok := entry.FieldValue(logging.FieldRange)
		require.True(t, ok)
		assert.Equal(t, "2024-01-02_", value)
	}
	assert.True(t, found)
}
