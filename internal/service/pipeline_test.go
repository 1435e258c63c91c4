package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMissingFileAbortsRun(t *testing.T) {
	e := newEnv()

	_, err := e.importer.Run(KindFilms, filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)

	// 源级失败不留档运行报告
	assert.Empty(t, e.runs.rows)
}

func TestRunUnknownKindRejected(t *testing.T) {
	e := newEnv()

	_, err := e.importer.Run("episodes", "whatever.csv")
	assert.Error(t, err)
}

func TestEmptyFileIsZeroRows(t *testing.T) {
	e := newEnv()

	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	report, err := e.importer.Run(KindFilms, path)
	require.NoError(t, err)

	assert.Equal(t, 0, report.RowsRead)
	assert.Equal(t, 0, report.Failed)
}

func TestHeaderRowDiscardedUnread(t *testing.T) {
	e := newEnv()

	// 表头内容随意，甚至长得像数据行，也必须整行丢弃
	path := writeCSV(t, "tt9999999;Header Movie;2000;G;u;l;g;en;s;US")

	report, err := e.importer.Run(KindFilms, path)
	require.NoError(t, err)

	assert.Equal(t, 0, report.RowsRead)
	assert.Empty(t, e.films.rows)
}

func TestQuotedFieldWithSeparator(t *testing.T) {
	e := newEnv()

	row := inceptionRow()
	row[8] = `"plot; with a semicolon"`
	path := writeCSV(t, filmHeader, row)

	report, err := e.importer.Run(KindFilms, path)
	require.NoError(t, err)

	require.Equal(t, 1, report.Created)
	assert.Equal(t, "plot; with a semicolon", e.films.rows[0].Synopsis)
}
