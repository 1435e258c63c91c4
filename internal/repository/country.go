package repository

import (
	"github.com/user/cinetheque/internal/model"
	"gorm.io/gorm"
)

type CountryRepository struct {
	db *gorm.DB
}

func NewCountryRepository(db *gorm.DB) *CountryRepository {
	return &CountryRepository{db: db}
}

// FindOrCreate 按名称查找国家，不存在则创建
func (r *CountryRepository) FindOrCreate(name string) (*model.Country, error) {
	var country model.Country
	err := r.db.Where("name = ?", name).FirstOrCreate(&country, model.Country{Name: name}).Error
	if err != nil {
		return nil, err
	}

	return &country, nil
}

// List 列出全部国家
func (r *CountryRepository) List() ([]*model.Country, error) {
	var countries []*model.Country
	err := r.db.Order("name ASC").Find(&countries).Error
	return countries, err
}
