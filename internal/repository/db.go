package repository

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 初始化数据库连接
func InitDB(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层连接失败: %w", err)
	}

	// 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库 ping 失败: %w", err)
	}

	// 设置连接池
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Repositories 仓库集合
type Repositories struct {
	DB        *gorm.DB
	Person    *PersonRepository
	Actor     *ActorRepository
	Director  *DirectorRepository
	Film      *FilmRepository
	Country   *CountryRepository
	Genre     *GenreRepository
	ImportRun *ImportRunRepository
	User      *UserRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:        db,
		Person:    NewPersonRepository(db),
		Actor:     NewActorRepository(db),
		Director:  NewDirectorRepository(db),
		Film:      NewFilmRepository(db),
		Country:   NewCountryRepository(db),
		Genre:     NewGenreRepository(db),
		ImportRun: NewImportRunRepository(db),
		User:      NewUserRepository(db),
	}
}
