package edit

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*container.Container, models.Expense) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Storage.File = filepath.Join(t.TempDir(), "expenses.csv")
	cfg.Report.Format = "text"
	c, err := container.NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)

	d, err := dateutils.ParseISODate("2024-01-01")
	require.NoError(t, err)
	e := models.NewExpense(models.ExpenseInput{
		Date: d, Category: "Food", Description: "lunch", Amount: models.MustParseAmount("10"),
	})
	require.NoError(t, c.GetStore().Add(e))
	t.Cleanup(func() { flags = common.ExpenseFlags{} })
	return c, e
}

func newCmd(input string) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(out)
	return cmd, out
}

func TestEditCommand_Metadata(t *testing.T) {
	assert.Equal(t, "edit <id>", Cmd.Use)
	assert.NotNil(t, Cmd.RunE)
	assert.NotNil(t, Cmd.Flags().Lookup("interactive"))
}

func TestRunEdit_FlagsKeepOtherFields(t *testing.T) {
	c, e := setup(t)
	flags = common.ExpenseFlags{Amount: "12.345"}

	cmd, out := newCmd("")
	require.NoError(t, runEdit(cmd, c, e.ID.String()))

	got, ok := c.GetStore().GetByID(e.ID)
	require.True(t, ok)
	assert.Equal(t, "lunch", got.Description)
	assert.Equal(t, "Food", got.Category)
	assert.True(t, got.Amount.Equal(models.MustParseAmount("12.345")))
	assert.Equal(t, 1, c.GetStore().Len())
	assert.Contains(t, out.String(), "Updated expense")
}

func TestRunEdit_Interactive(t *testing.T) {
	c, e := setup(t)
	flags = common.ExpenseFlags{Interactive: true}

	cmd, out := newCmd("2024-02-02\n\ndinner\n\n")
	require.NoError(t, runEdit(cmd, c, e.ID.String()))

	got, _ := c.GetStore().GetByID(e.ID)
	assert.Equal(t, "2024-02-02", got.DateString())
	assert.Equal(t, "Food", got.Category)
	assert.Equal(t, "dinner", got.Description)
	assert.Contains(t, out.String(), "Category [Food]")
}

func TestRunEdit_InvalidLeavesRecordUntouched(t *testing.T) {
	c, e := setup(t)
	flags = common.ExpenseFlags{Amount: "-1"}

	cmd, _ := newCmd("")
	require.Error(t, runEdit(cmd, c, e.ID.String()))

	got, _ := c.GetStore().GetByID(e.ID)
	assert.Equal(t, e, got)
}

func TestRunEdit_UnknownID(t *testing.T) {
	c, _ := setup(t)
	cmd, _ := newCmd("")

	err := runEdit(cmd, c, uuid.NewString())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
