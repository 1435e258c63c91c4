package repository

import (
	"errors"
	"time"

	"github.com/user/cinetheque/internal/model"
	"gorm.io/gorm"
)

type DirectorRepository struct {
	db *gorm.DB
}

func NewDirectorRepository(db *gorm.DB) *DirectorRepository {
	return &DirectorRepository{db: db}
}

// FindByImdbID 根据外部编目 ID 查找导演
func (r *DirectorRepository) FindByImdbID(imdbID string) (*model.Director, error) {
	var director model.Director
	err := r.db.Where("imdb_id = ?", imdbID).First(&director).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &director, nil
}

// FindByPersonID 根据所属人物查找导演
func (r *DirectorRepository) FindByPersonID(personID uint) (*model.Director, error) {
	var director model.Director
	err := r.db.Where("person_id = ?", personID).First(&director).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &director, nil
}

// Create 创建导演
func (r *DirectorRepository) Create(director *model.Director) error {
	director.CreatedAt = time.Now()
	return r.db.Create(director).Error
}

// List 分页列出导演
func (r *DirectorRepository) List(offset, limit int) ([]*model.Director, error) {
	var directors []*model.Director
	err := r.db.Order("id ASC").Offset(offset).Limit(limit).Find(&directors).Error
	return directors, err
}
