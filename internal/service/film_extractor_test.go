package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inceptionRow() []string {
	return []string{"tt0000001", "Inception", "2010", "PG-13", "http://x", "CA, USA", "", "en", "A thief steals secrets...", "USA"}
}

func TestFilmExtractCreatesNewFilm(t *testing.T) {
	e := newEnv()
	path := writeCSV(t, filmHeader, inceptionRow())

	report, err := e.importer.Run(KindFilms, path)
	require.NoError(t, err)

	assert.Equal(t, 1, report.RowsRead)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 0, report.Reused)
	assert.Equal(t, 0, report.Failed)

	require.Len(t, e.films.rows, 1)
	film := e.films.rows[0]
	assert.Equal(t, "tt0000001", film.ImdbID)
	assert.Equal(t, "Inception", film.Title)
	assert.Equal(t, "2010", film.Year)
	assert.Equal(t, "PG-13", film.Rating)
	assert.Equal(t, "http://x", film.ProfileURL)
	assert.Equal(t, "CA, USA", film.FilmingLocation)
	assert.Equal(t, "en", film.Language)
	assert.Equal(t, "A thief steals secrets...", film.Synopsis)
	assert.Equal(t, "USA", film.Country)

	// 国家来自第 10 列，且建立了结构化关联
	require.Len(t, e.films.countries, 1)
	assert.Equal(t, film.ID, e.films.countries[0].FilmID)

	// 类型列为空，不建任何类型关联
	assert.Empty(t, e.films.genres)
}

func TestFilmExtractIdempotent(t *testing.T) {
	e := newEnv()
	path := writeCSV(t, filmHeader, inceptionRow())

	_, err := e.importer.Run(KindFilms, path)
	require.NoError(t, err)

	// 重新导入同一文件：0 新建，整行按重复跳过
	report, err := e.importer.Run(KindFilms, path)
	require.NoError(t, err)

	assert.Equal(t, 0, report.Created)
	assert.Equal(t, 1, report.Reused)
	assert.Equal(t, 0, report.Failed)
	assert.Len(t, e.films.rows, 1)
}

func TestFilmDuplicateWithinFileSkipped(t *testing.T) {
	e := newEnv()
	row2 := inceptionRow()
	row2[1] = "Inception (re-release)" // 同编目 ID，其余字段不同
	path := writeCSV(t, filmHeader, inceptionRow(), row2)

	report, err := e.importer.Run(KindFilms, path)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 1, report.Reused)
	require.Len(t, e.films.rows, 1)
	// 重复行绝不更新已有电影
	assert.Equal(t, "Inception", e.films.rows[0].Title)
}

func TestFilmSynopsisTruncated(t *testing.T) {
	e := newEnv()
	row := inceptionRow()
	row[8] = strings.Repeat("a", maxSynopsisLen+57)
	path := writeCSV(t, filmHeader, row)

	report, err := e.importer.Run(KindFilms, path)
	require.NoError(t, err)

	// 超长是警告不是错误，行照常入库
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 0, report.Failed)
	assert.Len(t, e.films.rows[0].Synopsis, maxSynopsisLen)
}

func TestFilmMissingImdbFails(t *testing.T) {
	e := newEnv()
	rowEmpty := inceptionRow()
	rowEmpty[0] = ""
	rowSentinel := inceptionRow()
	rowSentinel[0] = "N/A"
	path := writeCSV(t, filmHeader, rowEmpty, rowSentinel)

	report, err := e.importer.Run(KindFilms, path)
	require.NoError(t, err)

	assert.Equal(t, 2, report.RowsRead)
	assert.Equal(t, 0, report.Created)
	assert.Equal(t, 2, report.Failed)
	require.Len(t, report.Errors, 2)
	assert.Equal(t, "Inception", report.Errors[0].Row)
	assert.Contains(t, report.Errors[0].Reason, ErrMissingRequiredField.Error())
	assert.Empty(t, e.films.rows)
}

func TestFilmGenresLinked(t *testing.T) {
	e := newEnv()
	row := inceptionRow()
	row[6] = "Action, Sci-Fi"
	path := writeCSV(t, filmHeader, row)

	_, err := e.importer.Run(KindFilms, path)
	require.NoError(t, err)

	assert.Len(t, e.films.genres, 2)
	assert.Len(t, e.genres.rows, 2)
}

func TestFilmMalformedRowIsolated(t *testing.T) {
	e := newEnv()
	path := writeCSV(t, filmHeader,
		[]string{"tt1", "Short row"}, // 列数不够
		inceptionRow(),
	)

	report, err := e.importer.Run(KindFilms, path)
	require.NoError(t, err)

	// 坏行单独计失败，后续行照常处理
	assert.Equal(t, 2, report.RowsRead)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Created)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0].Reason, ErrMalformedRow.Error())
}

func TestImportRunPersisted(t *testing.T) {
	e := newEnv()
	path := writeCSV(t, filmHeader, inceptionRow())

	_, err := e.importer.Run(KindFilms, path)
	require.NoError(t, err)

	require.Len(t, e.runs.rows, 1)
	run := e.runs.rows[0]
	assert.Equal(t, KindFilms, run.Kind)
	assert.Equal(t, 1, run.RowsRead)
	assert.Equal(t, 1, run.Created)
	assert.False(t, run.FinishedAt.Before(run.StartedAt))
}
