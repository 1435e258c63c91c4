package service

import (
	"time"

	"github.com/user/cinetheque/internal/model"
	"github.com/user/cinetheque/internal/utils"
)

// Resolver 自然键解析器：判定一条候选记录是否已有对应实体。
// 所有匹配都是全等比较（大小写和空白已在上游归一化），不做模糊匹配。
// 多个可用键的实体按声明顺序逐个尝试策略，先命中先返回。
type Resolver struct {
	persons   PersonStore
	actors    ActorStore
	directors DirectorStore
	films     FilmStore

	// 只缓存命中项；未命中必须每次都回存储确认
	personCache *utils.LookupCache[*model.Person]
}

// NewResolver 创建解析器
func NewResolver(persons PersonStore, actors ActorStore, directors DirectorStore, films FilmStore) *Resolver {
	return &Resolver{
		persons:     persons,
		actors:      actors,
		directors:   directors,
		films:       films,
		personCache: utils.NewLookupCache[*model.Person](4096, time.Hour),
	}
}

func personKey(identity, birthDateRaw string) string {
	return identity + "|" + birthDateRaw
}

// ResolvePerson 按 (identity, birth_date_raw) 查找人物
func (r *Resolver) ResolvePerson(identity, birthDateRaw string) (*model.Person, error) {
	key := personKey(identity, birthDateRaw)
	if person, ok := r.personCache.Get(key); ok {
		return person, nil
	}

	person, err := r.persons.FindByIdentityAndBirthDate(identity, birthDateRaw)
	if err != nil {
		return nil, err
	}
	if person != nil {
		r.personCache.Set(key, person)
	}

	return person, nil
}

// CachePerson 新建人物后回填缓存，同一次运行里后续行直接命中
func (r *Resolver) CachePerson(person *model.Person) {
	r.personCache.Set(personKey(person.Identity, person.BirthDateRaw), person)
}

// ResolveActor 演员查找策略，按顺序尝试：
//  1. 外部编目 ID（存在时）
//  2. 所属人物
func (r *Resolver) ResolveActor(imdbID string, personID uint) (*model.Actor, error) {
	if imdbID != "" {
		actor, err := r.actors.FindByImdbID(imdbID)
		if err != nil || actor != nil {
			return actor, err
		}
	}
	return r.actors.FindByPersonID(personID)
}

// ResolveDirector 导演查找策略，顺序与演员一致
func (r *Resolver) ResolveDirector(imdbID string, personID uint) (*model.Director, error) {
	if imdbID != "" {
		director, err := r.directors.FindByImdbID(imdbID)
		if err != nil || director != nil {
			return director, err
		}
	}
	return r.directors.FindByPersonID(personID)
}

// ResolveFilm 电影只有一个自然键：外部编目 ID
func (r *Resolver) ResolveFilm(imdbID string) (*model.Film, error) {
	return r.films.FindByImdbID(imdbID)
}
