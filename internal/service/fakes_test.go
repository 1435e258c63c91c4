package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/user/cinetheque/internal/model"
)

// 内存版 Record Store：只实现核心依赖的窄接口，供测试替换数据库

type fakePersons struct {
	rows   []*model.Person
	nextID uint
}

func (f *fakePersons) FindByIdentityAndBirthDate(identity, birthDateRaw string) (*model.Person, error) {
	for _, p := range f.rows {
		if p.Identity == identity && p.BirthDateRaw == birthDateRaw {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePersons) Create(person *model.Person) error {
	f.nextID++
	person.ID = f.nextID
	f.rows = append(f.rows, person)
	return nil
}

type fakeActors struct {
	rows    []*model.Actor
	nextID  uint
	failing bool
}

func (f *fakeActors) FindByImdbID(imdbID string) (*model.Actor, error) {
	for _, a := range f.rows {
		if a.ImdbID == imdbID {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeActors) FindByPersonID(personID uint) (*model.Actor, error) {
	for _, a := range f.rows {
		if a.PersonID == personID {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeActors) Create(actor *model.Actor) error {
	if f.failing {
		return errors.New("insert rejected")
	}
	f.nextID++
	actor.ID = f.nextID
	f.rows = append(f.rows, actor)
	return nil
}

func (f *fakeActors) LinkToPerson(actorID, personID uint) error {
	for _, a := range f.rows {
		if a.ID == actorID {
			a.PersonID = personID
			return nil
		}
	}
	return errors.New("actor not found")
}

type fakeDirectors struct {
	rows   []*model.Director
	nextID uint
}

func (f *fakeDirectors) FindByImdbID(imdbID string) (*model.Director, error) {
	for _, d := range f.rows {
		if d.ImdbID == imdbID {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDirectors) FindByPersonID(personID uint) (*model.Director, error) {
	for _, d := range f.rows {
		if d.PersonID == personID {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDirectors) Create(director *model.Director) error {
	f.nextID++
	director.ID = f.nextID
	f.rows = append(f.rows, director)
	return nil
}

type fakeFilms struct {
	rows      []*model.Film
	countries []model.FilmCountry
	genres    []model.FilmGenre
	nextID    uint
}

func (f *fakeFilms) FindByImdbID(imdbID string) (*model.Film, error) {
	for _, fl := range f.rows {
		if fl.ImdbID == imdbID {
			return fl, nil
		}
	}
	return nil, nil
}

func (f *fakeFilms) Create(film *model.Film) error {
	f.nextID++
	film.ID = f.nextID
	f.rows = append(f.rows, film)
	return nil
}

func (f *fakeFilms) AddCountry(filmID, countryID uint) error {
	f.countries = append(f.countries, model.FilmCountry{FilmID: filmID, CountryID: countryID})
	return nil
}

func (f *fakeFilms) AddGenre(filmID, genreID uint) error {
	f.genres = append(f.genres, model.FilmGenre{FilmID: filmID, GenreID: genreID})
	return nil
}

type fakeCountries struct {
	rows   map[string]*model.Country
	nextID uint
}

func (f *fakeCountries) FindOrCreate(name string) (*model.Country, error) {
	if f.rows == nil {
		f.rows = map[string]*model.Country{}
	}
	if c, ok := f.rows[name]; ok {
		return c, nil
	}
	f.nextID++
	c := &model.Country{ID: f.nextID, Name: name}
	f.rows[name] = c
	return c, nil
}

type fakeGenres struct {
	rows   map[string]*model.Genre
	nextID uint
}

func (f *fakeGenres) FindOrCreate(name string) (*model.Genre, error) {
	if f.rows == nil {
		f.rows = map[string]*model.Genre{}
	}
	if g, ok := f.rows[name]; ok {
		return g, nil
	}
	f.nextID++
	g := &model.Genre{ID: f.nextID, Name: name}
	f.rows[name] = g
	return g, nil
}

type fakeRuns struct {
	rows []*model.ImportRun
}

func (f *fakeRuns) Create(run *model.ImportRun) error {
	f.rows = append(f.rows, run)
	return nil
}

// env 一套接好线的提取器和内存存储
type env struct {
	persons   *fakePersons
	actors    *fakeActors
	directors *fakeDirectors
	films     *fakeFilms
	countries *fakeCountries
	genres    *fakeGenres
	runs      *fakeRuns

	resolver *Resolver
	importer *Importer
}

func newEnv() *env {
	e := &env{
		persons:   &fakePersons{},
		actors:    &fakeActors{},
		directors: &fakeDirectors{},
		films:     &fakeFilms{},
		countries: &fakeCountries{},
		genres:    &fakeGenres{},
		runs:      &fakeRuns{},
	}

	e.resolver = NewResolver(e.persons, e.actors, e.directors, e.films)
	reconciler := NewPersonReconciler(e.persons, e.resolver)

	e.importer = NewImporter(
		NewFilmExtractor(e.films, e.countries, e.genres, e.resolver),
		NewActorExtractor(e.actors, reconciler, e.resolver),
		NewDirectorExtractor(e.directors, reconciler, e.resolver),
		e.runs,
	)

	return e
}

// writeCSV 生成 `;` 分隔的测试文件，自动加表头行
func writeCSV(t *testing.T, header string, rows ...[]string) string {
	t.Helper()

	var b strings.Builder
	b.WriteString(header + "\n")
	for _, row := range rows {
		b.WriteString(strings.Join(row, ";") + "\n")
	}

	path := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const filmHeader = "imdb;title;year;rating;url;location;genres;language;synopsis;country"
const actorHeader = "imdb;identity;birth_date;birth_place;height;url"
const directorHeader = "imdb;identity;birth_date;birth_place;url"
