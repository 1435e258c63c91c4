package model

import (
	"time"

	"github.com/lib/pq"
)

// Person 人物（演员和导演共用的身份记录）
// 自然键为 (identity, birth_date_raw)，两者完全一致才视为同一个人
type Person struct {
	ID           uint       `json:"id" db:"id"`
	Identity     string     `json:"identity" db:"identity" gorm:"uniqueIndex:idx_person_natural_key"`
	BirthDateRaw string     `json:"birth_date_raw" db:"birth_date_raw" gorm:"uniqueIndex:idx_person_natural_key"`
	BirthDate    *time.Time `json:"birth_date" db:"birth_date"` // 解析成功时填充，否则为 NULL
	BirthPlace   string     `json:"birth_place" db:"birth_place"`
	ProfileURL   string     `json:"profile_url" db:"profile_url"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

// Actor 演员，Person 的角色扩展（1:1，必须挂在一个 Person 上）
type Actor struct {
	ID        uint      `json:"id" db:"id"`
	PersonID  uint      `json:"person_id" db:"person_id" gorm:"index"`
	ImdbID    string    `json:"imdb_id" db:"imdb_id" gorm:"index"`
	Height    string    `json:"height" db:"height"` // 源数据不保证是数字，按原文存储
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Director 导演，与 Actor 同构的 Person 扩展
type Director struct {
	ID        uint      `json:"id" db:"id"`
	PersonID  uint      `json:"person_id" db:"person_id"`
	ImdbID    string    `json:"imdb_id" db:"imdb_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Film 电影，自然键为 imdb_id（必填且唯一）
type Film struct {
	ID              uint      `json:"id" db:"id"`
	ImdbID          string    `json:"imdb_id" db:"imdb_id" gorm:"unique"`
	Title           string    `json:"title" db:"title"`
	Year            string    `json:"year" db:"year"` // 源数据可能是区间或约数，不强转整数
	Rating          string    `json:"rating" db:"rating"`
	ProfileURL      string    `json:"profile_url" db:"profile_url"`
	FilmingLocation string    `json:"filming_location" db:"filming_location"`
	Language        string    `json:"language" db:"language"`
	Synopsis        string    `json:"synopsis" db:"synopsis"`
	Country         string    `json:"country" db:"country"` // 冗余的展示名，结构化关联见 FilmCountry
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// Country 结构化国家表
type Country struct {
	ID   uint   `json:"id" db:"id"`
	Name string `json:"name" db:"name" gorm:"unique"`
}

// Genre 电影类型
type Genre struct {
	ID   uint   `json:"id" db:"id"`
	Name string `json:"name" db:"name" gorm:"unique"`
}

// FilmCountry 电影-国家多对多关联
type FilmCountry struct {
	FilmID    uint `json:"film_id" db:"film_id"`
	CountryID uint `json:"country_id" db:"country_id"`
}

// FilmGenre 电影-类型多对多关联
type FilmGenre struct {
	FilmID  uint `json:"film_id" db:"film_id"`
	GenreID uint `json:"genre_id" db:"genre_id"`
}

// Role 电影-演员出演关联（带角色名）
type Role struct {
	ID        uint   `json:"id" db:"id"`
	FilmID    uint   `json:"film_id" db:"film_id"`
	ActorID   uint   `json:"actor_id" db:"actor_id"`
	Character string `json:"character" db:"character"`
}

// ImportRun 一次 CSV 导入的运行报告（落库留档）
type ImportRun struct {
	ID         uint           `json:"id" db:"id"`
	File       string         `json:"file" db:"file"`
	Kind       string         `json:"kind" db:"kind"`
	RowsRead   int            `json:"rows_read" db:"rows_read"`
	Created    int            `json:"created" db:"created"`
	Reused     int            `json:"reused" db:"reused"`
	Failed     int            `json:"failed" db:"failed"`
	Errors     pq.StringArray `json:"errors" db:"errors" gorm:"type:text[]"`
	StartedAt  time.Time      `json:"started_at" db:"started_at"`
	FinishedAt time.Time      `json:"finished_at" db:"finished_at"`
}
