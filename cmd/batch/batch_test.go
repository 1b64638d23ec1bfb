package batch_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/expense-csv/cmd/batch"
	"fjacquet/expense-csv/cmd/root"
	"fjacquet/expense-csv/internal/config"
	"fjacquet/expense-csv/internal/container"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContainer(t *testing.T) *container.Container {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "error"
	cfg.Log.Format = "text"
	cfg.CSV.Delimiter = ","
	cfg.Budget.Groceries = 200
	cfg.Budget.Rent = 1000
	cfg.Budget.Utilities = 150
	cfg.Budget.Entertainment = 100
	cfg.Report.Format = "text"
	c, err := container.NewContainer(cfg)
	require.NoError(t, err)
	return c
}

func setupBatchTest(t *testing.T) *bytes.Buffer {
	t.Helper()
	originalFlags := root.SharedFlags
	originalContainer := root.AppContainer
	t.Cleanup(func() {
		root.SharedFlags = originalFlags
		root.AppContainer = originalContainer
		require.NoError(t, batch.Cmd.Flags().Set("consolidate", "false"))
		batch.Cmd.SetOut(nil)
	})

	root.SharedFlags = root.CommonFlags{}
	root.AppContainer = newTestContainer(t)

	var buf bytes.Buffer
	batch.Cmd.SetOut(&buf)
	return &buf
}

func TestBatchCommand_Metadata(t *testing.T) {
	assert.Equal(t, "batch", batch.Cmd.Use)
	assert.Contains(t, batch.Cmd.Short, "Batch process")
	assert.Contains(t, batch.Cmd.Long, "directories")
	assert.NotNil(t, batch.Cmd.RunE)
	assert.NotNil(t, batch.Cmd.Flags().Lookup("consolidate"))
}

func TestBatchCommand_Run(t *testing.T) {
	buf := setupBatchTest(t)

	inputDir := t.TempDir()
	outputDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "jan.csv"),
		[]byte("Description,Amount,Date\nWalmart,54.23,2024-01-05\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "feb.csv"),
		[]byte("Description,Amount,Date\nNetflix,15.99,2024-02-03\n"), 0600))

	root.SharedFlags.Input = inputDir
	root.SharedFlags.Output = outputDir

	require.NoError(t, batch.Cmd.RunE(batch.Cmd, nil))

	assert.Contains(t, buf.String(), "2 files written")
	_, err := os.Stat(filepath.Join(outputDir, "jan_categorized.csv"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(outputDir, "feb_categorized.csv"))
	assert.NoError(t, err)
}

func TestBatchCommand_Consolidate(t *testing.T) {
	buf := setupBatchTest(t)

	inputDir := t.TempDir()
	outputDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "jan.csv"),
		[]byte("Description,Amount,Date\nWalmart,54.23,2024-01-05\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "feb.csv"),
		[]byte("Description,Amount,Date\nNetflix,15.99,2024-02-03\n"), 0600))

	root.SharedFlags.Input = inputDir
	root.SharedFlags.Output = outputDir
	require.NoError(t, batch.Cmd.Flags().Set("consolidate", "true"))

	require.NoError(t, batch.Cmd.RunE(batch.Cmd, nil))

	assert.Contains(t, buf.String(), "Consolidated table written")
	data, err := os.ReadFile(filepath.Join(outputDir, "expenses_2024-01-05_2024-02-03.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Walmart")
	assert.Contains(t, string(data), "Netflix")
}

func TestBatchCommand_MissingDirectories(t *testing.T) {
	setupBatchTest(t)

	err := batch.Cmd.RunE(batch.Cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directories must be specified")
}
