package service

import (
	"fmt"
	"log"
	"time"

	"github.com/user/cinetheque/internal/model"
)

// 导入文件的实体种类
const (
	KindFilms     = "films"
	KindActors    = "actors"
	KindDirectors = "directors"
)

// Importer 聚合各提取器：按种类分发一次导入运行，并把运行报告落库留档。
// 一次运行就是对一个文件的完整单遍处理；重跑需要从头重新读取。
type Importer struct {
	films     *FilmExtractor
	actors    *ActorExtractor
	directors *DirectorExtractor
	runs      ImportRunStore
}

// NewImporter 创建导入服务
func NewImporter(films *FilmExtractor, actors *ActorExtractor, directors *DirectorExtractor, runs ImportRunStore) *Importer {
	return &Importer{
		films:     films,
		actors:    actors,
		directors: directors,
		runs:      runs,
	}
}

// Run 执行一次导入并返回运行报告。
// 只有源级失败会返回错误；行级失败都已计入报告。
func (im *Importer) Run(kind, path string) (*Report, error) {
	started := time.Now()

	var report *Report
	var err error
	switch kind {
	case KindFilms:
		report, err = im.films.Extract(path)
	case KindActors:
		report, err = im.actors.Extract(path)
	case KindDirectors:
		report, err = im.directors.Extract(path)
	default:
		return nil, fmt.Errorf("未知的导入种类: %q", kind)
	}
	if err != nil {
		return nil, err
	}

	if im.runs != nil {
		reasons := make([]string, 0, len(report.Errors))
		for _, e := range report.Errors {
			reasons = append(reasons, fmt.Sprintf("%s: %s", e.Row, e.Reason))
		}
		run := &model.ImportRun{
			File:       report.File,
			Kind:       report.Kind,
			RowsRead:   report.RowsRead,
			Created:    report.Created,
			Reused:     report.Reused,
			Failed:     report.Failed,
			Errors:     reasons,
			StartedAt:  started,
			FinishedAt: time.Now(),
		}
		if rerr := im.runs.Create(run); rerr != nil {
			// 留档失败不影响导入结果本身
			log.Printf("[导入] 运行报告落库失败: %v", rerr)
		}
	}

	return report, nil
}
