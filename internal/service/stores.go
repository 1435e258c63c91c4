package service

import (
	"errors"

	"github.com/user/cinetheque/internal/model"
)

// 核心只依赖下面这组窄接口访问存储，不直接发 SQL。
// internal/repository 里的各仓库是这些接口的数据库实现，
// 测试用内存假实现。

// PersonStore 人物存储
type PersonStore interface {
	FindByIdentityAndBirthDate(identity, birthDateRaw string) (*model.Person, error)
	Create(person *model.Person) error
}

// ActorStore 演员存储
type ActorStore interface {
	FindByImdbID(imdbID string) (*model.Actor, error)
	FindByPersonID(personID uint) (*model.Actor, error)
	Create(actor *model.Actor) error
	LinkToPerson(actorID, personID uint) error
}

// DirectorStore 导演存储
type DirectorStore interface {
	FindByImdbID(imdbID string) (*model.Director, error)
	FindByPersonID(personID uint) (*model.Director, error)
	Create(director *model.Director) error
}

// FilmStore 电影存储
type FilmStore interface {
	FindByImdbID(imdbID string) (*model.Film, error)
	Create(film *model.Film) error
	AddCountry(filmID, countryID uint) error
	AddGenre(filmID, genreID uint) error
}

// CountryStore 国家存储
type CountryStore interface {
	FindOrCreate(name string) (*model.Country, error)
}

// GenreStore 类型存储
type GenreStore interface {
	FindOrCreate(name string) (*model.Genre, error)
}

// ImportRunStore 运行报告存储
type ImportRunStore interface {
	Create(run *model.ImportRun) error
}

// 行级错误种类。全部在行边界内被捕获并计入报告，
// 只有源级读取失败会让整个运行中止。
var (
	ErrMalformedRow         = errors.New("列数不匹配")
	ErrMissingRequiredField = errors.New("缺少必填字段")
	ErrUnparsableDate       = errors.New("无法解析日期")
	ErrInvalidRecord        = errors.New("记录校验未通过")
	ErrPersistence          = errors.New("写入存储失败")
)
