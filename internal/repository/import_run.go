package repository

import (
	"github.com/user/cinetheque/internal/model"
	"gorm.io/gorm"
)

type ImportRunRepository struct {
	db *gorm.DB
}

func NewImportRunRepository(db *gorm.DB) *ImportRunRepository {
	return &ImportRunRepository{db: db}
}

// Create 落库一次导入运行报告
func (r *ImportRunRepository) Create(run *model.ImportRun) error {
	return r.db.Create(run).Error
}

// ListRecent 按开始时间倒序列出最近的运行
func (r *ImportRunRepository) ListRecent(limit int) ([]*model.ImportRun, error) {
	var runs []*model.ImportRun
	err := r.db.Order("started_at DESC").Limit(limit).Find(&runs).Error
	return runs, err
}
