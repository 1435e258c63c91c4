package handler

import (
	"github.com/user/cinetheque/internal/config"
	"github.com/user/cinetheque/internal/repository"
	"github.com/user/cinetheque/internal/service"
)

// Handler HTTP 处理器
type Handler struct {
	Repos    *repository.Repositories
	Config   *config.Config
	Importer *service.Importer
}

// NewHandler 创建处理器并装配导入服务
func NewHandler(repos *repository.Repositories, cfg *config.Config) *Handler {
	resolver := service.NewResolver(repos.Person, repos.Actor, repos.Director, repos.Film)
	persons := service.NewPersonReconciler(repos.Person, resolver)

	importer := service.NewImporter(
		service.NewFilmExtractor(repos.Film, repos.Country, repos.Genre, resolver),
		service.NewActorExtractor(repos.Actor, persons, resolver),
		service.NewDirectorExtractor(repos.Director, persons, resolver),
		repos.ImportRun,
	)

	return &Handler{
		Repos:    repos,
		Config:   cfg,
		Importer: importer,
	}
}
