package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/user/cinetheque/internal/model"
	"github.com/user/cinetheque/internal/utils"
)

// 导演 CSV 的固定列位：imdb;姓名;出生日期;出生地;链接
const directorColumns = 5

// directorCandidate 归一化后的候选导演记录
type directorCandidate struct {
	Person personCandidate
	ImdbID string `validate:"max=50"`
}

// DirectorExtractor 导演 CSV 提取与去重入库服务，流程与演员一致
type DirectorExtractor struct {
	directors DirectorStore
	persons   *PersonReconciler
	resolver  *Resolver
	validate  *validator.Validate
}

// NewDirectorExtractor 创建导演提取器
func NewDirectorExtractor(directors DirectorStore, persons *PersonReconciler, resolver *Resolver) *DirectorExtractor {
	return &DirectorExtractor{
		directors: directors,
		persons:   persons,
		resolver:  resolver,
		validate:  validator.New(),
	}
}

// Extract 单遍读取导演 CSV 并逐行对账入库
func (e *DirectorExtractor) Extract(path string) (*Report, error) {
	return runCSV(path, KindDirectors, directorColumns, personRowID, e.reconcileRow)
}

// parse 把原始行映射为归一化候选记录
func (e *DirectorExtractor) parse(line []string) (*directorCandidate, error) {
	cand := &directorCandidate{
		Person: personCandidate{
			Identity:     utils.NormalizeField(line[1]),
			BirthDateRaw: utils.NormalizeField(line[2]),
			BirthPlace:   utils.NormalizeField(line[3]),
			ProfileURL:   utils.NormalizeField(line[4]),
		},
		ImdbID: utils.NormalizeField(line[0]),
	}

	if cand.Person.Identity == "" {
		return nil, fmt.Errorf("%w: identity", ErrMissingRequiredField)
	}

	return cand, nil
}

// reconcileRow 一行的对账流程，导演在人物之后才允许提交
func (e *DirectorExtractor) reconcileRow(line []string) (outcome, error) {
	cand, err := e.parse(line)
	if err != nil {
		return 0, err
	}

	if err := e.validate.Struct(cand); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	person, err := e.persons.FindOrCreate(cand.Person)
	if err != nil {
		return 0, err
	}

	existing, err := e.resolver.ResolveDirector(cand.ImdbID, person.ID)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return outcomeReused, nil
	}

	director := &model.Director{
		PersonID: person.ID,
		ImdbID:   cand.ImdbID,
	}
	if err := e.directors.Create(director); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return outcomeCreated, nil
}
