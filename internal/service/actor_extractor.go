package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/user/cinetheque/internal/model"
	"github.com/user/cinetheque/internal/utils"
)

// 演员 CSV 的固定列位：imdb;姓名;出生日期;出生地;身高;链接
const actorColumns = 6

// actorCandidate 归一化后的候选演员记录
type actorCandidate struct {
	Person personCandidate
	ImdbID string `validate:"max=50"`
	Height string `validate:"max=50"` // 源数据不保证是数字，保留原文
}

// ActorExtractor 演员 CSV 提取与去重入库服务。
// 每行先消解所属人物（查找或创建），演员在人物之后才允许提交。
type ActorExtractor struct {
	actors   ActorStore
	persons  *PersonReconciler
	resolver *Resolver
	validate *validator.Validate
}

// NewActorExtractor 创建演员提取器
func NewActorExtractor(actors ActorStore, persons *PersonReconciler, resolver *Resolver) *ActorExtractor {
	return &ActorExtractor{
		actors:   actors,
		persons:  persons,
		resolver: resolver,
		validate: validator.New(),
	}
}

// Extract 单遍读取演员 CSV 并逐行对账入库
func (e *ActorExtractor) Extract(path string) (*Report, error) {
	return runCSV(path, KindActors, actorColumns, personRowID, e.reconcileRow)
}

// personRowID 行失败时的标识字段（姓名）
func personRowID(line []string) string {
	if len(line) > 1 && line[1] != "" {
		return line[1]
	}
	return "Unknown"
}

// parse 把原始行映射为归一化候选记录
func (e *ActorExtractor) parse(line []string) (*actorCandidate, error) {
	cand := &actorCandidate{
		Person: personCandidate{
			Identity:     utils.NormalizeField(line[1]),
			BirthDateRaw: utils.NormalizeField(line[2]),
			BirthPlace:   utils.NormalizeField(line[3]),
			ProfileURL:   utils.NormalizeField(line[5]),
		},
		ImdbID: utils.NormalizeField(line[0]),
		Height: utils.NormalizeField(line[4]),
	}

	if cand.Person.Identity == "" {
		return nil, fmt.Errorf("%w: identity", ErrMissingRequiredField)
	}

	return cand, nil
}

// reconcileRow 一行的对账流程：
// Parse → Validate → 人物查找或创建 → 演员 Resolve → {Reuse | Create+Associate}
func (e *ActorExtractor) reconcileRow(line []string) (outcome, error) {
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

	existing, err := e.resolver.ResolveActor(cand.ImdbID, person.ID)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		// 历史数据可能带编目 ID 但没挂人物，补上关联后按复用计
		if existing.PersonID == 0 {
			if err := e.actors.LinkToPerson(existing.ID, person.ID); err != nil {
				return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
			}
		}
		return outcomeReused, nil
	}

	actor := &model.Actor{
		PersonID: person.ID,
		ImdbID:   cand.ImdbID,
		Height:   cand.Height,
	}
	if err := e.actors.Create(actor); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return outcomeCreated, nil
}
