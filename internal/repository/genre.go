package repository

import (
	"github.com/user/cinetheque/internal/model"
	"gorm.io/gorm"
)

type GenreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

// FindOrCreate 按名称查找类型，不存在则创建
func (r *GenreRepository) FindOrCreate(name string) (*model.Genre, error) {
	var genre model.Genre
	err := r.db.Where("name = ?", name).FirstOrCreate(&genre, model.Genre{Name: name}).Error
	if err != nil {
		return nil, err
	}

	return &genre, nil
}

// List 列出全部类型
func (r *GenreRepository) List() ([]*model.Genre, error) {
	var genres []*model.Genre
	err := r.db.Order("name ASC").Find(&genres).Error
	return genres, err
}
