package repository

import (
	"errors"
	"time"

	"github.com/user/cinetheque/internal/model"
	"gorm.io/gorm"
)

type ActorRepository struct {
	db *gorm.DB
}

func NewActorRepository(db *gorm.DB) *ActorRepository {
	return &ActorRepository{db: db}
}

// FindByImdbID 根据外部编目 ID 查找演员
func (r *ActorRepository) FindByImdbID(imdbID string) (*model.Actor, error) {
	var actor model.Actor
	err := r.db.Where("imdb_id = ?", imdbID).First(&actor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &actor, nil
}

// FindByPersonID 根据所属人物查找演员（1:1，最多一条）
func (r *ActorRepository) FindByPersonID(personID uint) (*model.Actor, error) {
	var actor model.Actor
	err := r.db.Where("person_id = ?", personID).First(&actor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &actor, nil
}

// FindByID 根据 ID 查找演员
func (r *ActorRepository) FindByID(id uint) (*model.Actor, error) {
	var actor model.Actor
	err := r.db.First(&actor, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &actor, nil
}

// Create 创建演员
func (r *ActorRepository) Create(actor *model.Actor) error {
	actor.CreatedAt = time.Now()
	return r.db.Create(actor).Error
}

// LinkToPerson 将演员挂到指定人物上
func (r *ActorRepository) LinkToPerson(actorID, personID uint) error {
	return r.db.Model(&model.Actor{}).Where("id = ?", actorID).Update("person_id", personID).Error
}

// List 分页列出演员
func (r *ActorRepository) List(offset, limit int) ([]*model.Actor, error) {
	var actors []*model.Actor
	err := r.db.Order("id ASC").Offset(offset).Limit(limit).Find(&actors).Error
	return actors, err
}

// Count 演员总数
func (r *ActorRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Actor{}).Count(&count).Error
	return count, err
}
