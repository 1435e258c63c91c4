package repository

import (
	"errors"
	"time"

	"github.com/user/cinetheque/internal/model"
	"gorm.io/gorm"
)

type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// FindByIdentityAndBirthDate 按自然键（姓名+出生日期原文）精确查找人物
// 没有命中时返回 (nil, nil)
func (r *PersonRepository) FindByIdentityAndBirthDate(identity, birthDateRaw string) (*model.Person, error) {
	var person model.Person
	err := r.db.Where("identity = ? AND birth_date_raw = ?", identity, birthDateRaw).First(&person).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &person, nil
}

// FindByID 根据 ID 查找人物
func (r *PersonRepository) FindByID(id uint) (*model.Person, error) {
	var person model.Person
	err := r.db.First(&person, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &person, nil
}

// Create 创建人物
func (r *PersonRepository) Create(person *model.Person) error {
	person.CreatedAt = time.Now()
	return r.db.Create(person).Error
}

// List 分页列出人物
func (r *PersonRepository) List(offset, limit int) ([]*model.Person, error) {
	var persons []*model.Person
	err := r.db.Order("id ASC").Offset(offset).Limit(limit).Find(&persons).Error
	return persons, err
}

// Count 人物总数
func (r *PersonRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Person{}).Count(&count).Error
	return count, err
}
