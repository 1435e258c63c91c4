package service

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/user/cinetheque/internal/model"
	"github.com/user/cinetheque/internal/utils"
	"golang.org/x/sync/singleflight"
)

// 电影 CSV 的固定列位（不按表头名解析）：
// imdb;标题;年份;评级;链接;拍摄地;类型列表;语言;简介;国家
const filmColumns = 10

// maxSynopsisLen 简介的入库上限，超长截断而不是拒绝
const maxSynopsisLen = 10000

// filmCandidate 归一化后的候选电影记录
type filmCandidate struct {
	ImdbID          string `validate:"required,max=50"`
	Title           string `validate:"required,max=255"`
	Year            string `validate:"max=10"`
	Rating          string `validate:"max=10"`
	ProfileURL      string `validate:"max=500"`
	FilmingLocation string `validate:"max=2255"`
	Genres          []string
	Language        string `validate:"max=100"`
	Synopsis        string
	Country         string `validate:"max=255"`
}

// FilmExtractor 电影 CSV 提取与去重入库服务
type FilmExtractor struct {
	films     FilmStore
	countries CountryStore
	genres    GenreStore
	resolver  *Resolver
	validate  *validator.Validate
	sf        singleflight.Group // 同一个编目 ID 的查找-创建不允许并发交错
}

// NewFilmExtractor 创建电影提取器
func NewFilmExtractor(films FilmStore, countries CountryStore, genres GenreStore, resolver *Resolver) *FilmExtractor {
	return &FilmExtractor{
		films:     films,
		countries: countries,
		genres:    genres,
		resolver:  resolver,
		validate:  validator.New(),
	}
}

// Extract 单遍读取电影 CSV 并逐行对账入库。
// 同一编目 ID 重复出现时跳过，绝不更新已有电影。
func (e *FilmExtractor) Extract(path string) (*Report, error) {
	return runCSV(path, KindFilms, filmColumns, filmRowID, e.reconcileRow)
}

// filmRowID 行失败时的标识字段（标题）
func filmRowID(line []string) string {
	if len(line) > 1 && line[1] != "" {
		return line[1]
	}
	return "Unknown"
}

// parse 把原始行映射为归一化候选记录
func (e *FilmExtractor) parse(line []string) (*filmCandidate, error) {
	cand := &filmCandidate{
		ImdbID:          utils.NormalizeField(line[0]),
		Title:           utils.NormalizeField(line[1]),
		Year:            utils.NormalizeField(line[2]),
		Rating:          utils.NormalizeField(line[3]),
		ProfileURL:      utils.NormalizeField(line[4]),
		FilmingLocation: utils.NormalizeField(line[5]),
		Genres:          utils.SplitList(line[6]),
		Language:        utils.NormalizeField(line[7]),
		Country:         utils.NormalizeField(line[9]),
	}

	if cand.ImdbID == "" {
		return nil, fmt.Errorf("%w: imdb", ErrMissingRequiredField)
	}

	synopsis, truncated := utils.CapLength(utils.NormalizeField(line[8]), maxSynopsisLen)
	if truncated {
		// 截断是警告不是错误，该行照常入库
		log.Printf("[导入] 电影 %s 的简介超长，截断到 %d 字符", cand.Title, maxSynopsisLen)
	}
	cand.Synopsis = synopsis

	return cand, nil
}

// reconcileRow 一行的对账流程：Parse → Validate → Resolve → {Reuse | Create}
func (e *FilmExtractor) reconcileRow(line []string) (outcome, error) {
	cand, err := e.parse(line)
	if err != nil {
		return 0, err
	}

	if err := e.validate.Struct(cand); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	v, err, _ := e.sf.Do("film:"+cand.ImdbID, func() (interface{}, error) {
		existing, err := e.resolver.ResolveFilm(cand.ImdbID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			// 重复编目 ID：跳过，不更新
			log.Printf("[导入] 电影 %s (imdb %s) 已存在，跳过", cand.Title, cand.ImdbID)
			return outcomeReused, nil
		}
		return outcomeCreated, e.create(cand)
	})
	if err != nil {
		return 0, err
	}

	return v.(outcome), nil
}

// create 新建电影并建立国家/类型关联
func (e *FilmExtractor) create(cand *filmCandidate) error {
	film := &model.Film{
		ImdbID:          cand.ImdbID,
		Title:           cand.Title,
		Year:            cand.Year,
		Rating:          cand.Rating,
		ProfileURL:      cand.ProfileURL,
		FilmingLocation: cand.FilmingLocation,
		Language:        cand.Language,
		Synopsis:        cand.Synopsis,
		Country:         cand.Country,
	}

	if err := e.films.Create(film); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if cand.Country != "" {
		country, err := e.countries.FindOrCreate(cand.Country)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		if err := e.films.AddCountry(film.ID, country.ID); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}

	for _, name := range cand.Genres {
		genre, err := e.genres.FindOrCreate(name)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		if err := e.films.AddGenre(film.ID, genre.ID); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}

	log.Printf("[导入] 新建电影: %s (imdb %s)", film.Title, film.ImdbID)
	return nil
}
