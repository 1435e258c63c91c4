package repository

import (
	"errors"
	"time"

	"github.com/user/cinetheque/internal/model"
	"gorm.io/gorm"
)

type FilmRepository struct {
	db *gorm.DB
}

func NewFilmRepository(db *gorm.DB) *FilmRepository {
	return &FilmRepository{db: db}
}

// FindByImdbID 根据外部编目 ID 查找电影
func (r *FilmRepository) FindByImdbID(imdbID string) (*model.Film, error) {
	var film model.Film
	err := r.db.Where("imdb_id = ?", imdbID).First(&film).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &film, nil
}

// FindByID 根据 ID 查找电影
func (r *FilmRepository) FindByID(id uint) (*model.Film, error) {
	var film model.Film
	err := r.db.First(&film, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &film, nil
}

// Create 创建电影
func (r *FilmRepository) Create(film *model.Film) error {
	film.CreatedAt = time.Now()
	return r.db.Create(film).Error
}

// AddCountry 建立电影-国家关联（已存在则不重复插入）
func (r *FilmRepository) AddCountry(filmID, countryID uint) error {
	link := model.FilmCountry{FilmID: filmID, CountryID: countryID}
	return r.db.Where(&link).FirstOrCreate(&link).Error
}

// AddGenre 建立电影-类型关联（已存在则不重复插入）
func (r *FilmRepository) AddGenre(filmID, genreID uint) error {
	link := model.FilmGenre{FilmID: filmID, GenreID: genreID}
	return r.db.Where(&link).FirstOrCreate(&link).Error
}

// AddRole 建立电影-演员出演关联
func (r *FilmRepository) AddRole(filmID, actorID uint, character string) error {
	role := model.Role{FilmID: filmID, ActorID: actorID}
	return r.db.Where(&role).Attrs(model.Role{Character: character}).FirstOrCreate(&role).Error
}

// ListGenres 列出电影关联的类型
func (r *FilmRepository) ListGenres(filmID uint) ([]*model.Genre, error) {
	var genres []*model.Genre
	err := r.db.Model(&model.Genre{}).
		Joins("JOIN film_genres ON film_genres.genre_id = genres.id").
		Where("film_genres.film_id = ?", filmID).
		Find(&genres).Error
	return genres, err
}

// ListCountries 列出电影关联的国家
func (r *FilmRepository) ListCountries(filmID uint) ([]*model.Country, error) {
	var countries []*model.Country
	err := r.db.Model(&model.Country{}).
		Joins("JOIN film_countries ON film_countries.country_id = countries.id").
		Where("film_countries.film_id = ?", filmID).
		Find(&countries).Error
	return countries, err
}

// List 分页列出电影
func (r *FilmRepository) List(offset, limit int) ([]*model.Film, error) {
	var films []*model.Film
	err := r.db.Order("id ASC").Offset(offset).Limit(limit).Find(&films).Error
	return films, err
}

// Count 电影总数
func (r *FilmRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Film{}).Count(&count).Error
	return count, err
}

// Delete 删除电影及其关联（先删从属记录再删主体，单事务内完成）
func (r *FilmRepository) Delete(filmID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("film_id = ?", filmID).Delete(&model.Role{}).Error; err != nil {
			return err
		}
		if err := tx.Where("film_id = ?", filmID).Delete(&model.FilmGenre{}).Error; err != nil {
			return err
		}
		if err := tx.Where("film_id = ?", filmID).Delete(&model.FilmCountry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Film{}, filmID).Error
	})
}
