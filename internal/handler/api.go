package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/user/cinetheque/internal/model"
	"github.com/user/cinetheque/internal/utils"
)

// pageParams 从查询串取分页参数
func pageParams(c *gin.Context) (offset, limit int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if size < 1 || size > 100 {
		size = 20
	}
	return (page - 1) * size, size
}

// ListFilms 电影列表（分页，带短时缓存）
func (h *Handler) ListFilms(c *gin.Context) {
	offset, limit := pageParams(c)

	cacheKey := fmt.Sprintf("films:%d:%d", offset, limit)
	if cached, ok := utils.CacheGet(cacheKey); ok {
		utils.Success(c, cached)
		return
	}

	films, err := h.Repos.Film.List(offset, limit)
	if err != nil {
		utils.InternalServerError(c, "查询电影失败")
		return
	}
	total, _ := h.Repos.Film.Count()

	data := gin.H{"total": total, "items": films}
	utils.CacheSet(cacheKey, data, 1*time.Minute)
	utils.Success(c, data)
}

// GetFilm 按外部编目 ID 查询电影详情（含国家/类型关联）
func (h *Handler) GetFilm(c *gin.Context) {
	imdbID := c.Param("imdb")

	film, err := h.Repos.Film.FindByImdbID(imdbID)
	if err != nil {
		utils.InternalServerError(c, "查询电影失败")
		return
	}
	if film == nil {
		utils.NotFound(c, "电影不存在")
		return
	}

	genres, _ := h.Repos.Film.ListGenres(film.ID)
	countries, _ := h.Repos.Film.ListCountries(film.ID)

	utils.Success(c, gin.H{
		"film":      film,
		"genres":    genres,
		"countries": countries,
	})
}

// ListPersons 人物列表（分页）
func (h *Handler) ListPersons(c *gin.Context) {
	offset, limit := pageParams(c)

	persons, err := h.Repos.Person.List(offset, limit)
	if err != nil {
		utils.InternalServerError(c, "查询人物失败")
		return
	}
	total, _ := h.Repos.Person.Count()

	utils.Success(c, gin.H{"total": total, "items": persons})
}

// GetPerson 人物详情，附带演员/导演扩展（存在时）
func (h *Handler) GetPerson(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "无效的人物 ID")
		return
	}

	person, err := h.Repos.Person.FindByID(uint(id))
	if err != nil {
		utils.InternalServerError(c, "查询人物失败")
		return
	}
	if person == nil {
		utils.NotFound(c, "人物不存在")
		return
	}

	actor, _ := h.Repos.Actor.FindByPersonID(person.ID)
	director, _ := h.Repos.Director.FindByPersonID(person.ID)

	utils.Success(c, gin.H{
		"person":   person,
		"actor":    actor,
		"director": director,
	})
}

// ListActors 演员列表（分页）
func (h *Handler) ListActors(c *gin.Context) {
	offset, limit := pageParams(c)

	actors, err := h.Repos.Actor.List(offset, limit)
	if err != nil {
		utils.InternalServerError(c, "查询演员失败")
		return
	}
	total, _ := h.Repos.Actor.Count()

	utils.Success(c, gin.H{"total": total, "items": actors})
}

// GetActor 演员详情，附带所属人物
func (h *Handler) GetActor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "无效的演员 ID")
		return
	}

	actor, err := h.Repos.Actor.FindByID(uint(id))
	if err != nil {
		utils.InternalServerError(c, "查询演员失败")
		return
	}
	if actor == nil {
		utils.NotFound(c, "演员不存在")
		return
	}

	var person *model.Person
	if actor.PersonID != 0 {
		person, _ = h.Repos.Person.FindByID(actor.PersonID)
	}

	utils.Success(c, gin.H{"actor": actor, "person": person})
}

// ListDirectors 导演列表（分页）
func (h *Handler) ListDirectors(c *gin.Context) {
	offset, limit := pageParams(c)

	directors, err := h.Repos.Director.List(offset, limit)
	if err != nil {
		utils.InternalServerError(c, "查询导演失败")
		return
	}

	utils.Success(c, gin.H{"items": directors})
}

// ListGenres 类型列表
func (h *Handler) ListGenres(c *gin.Context) {
	genres, err := h.Repos.Genre.List()
	if err != nil {
		utils.InternalServerError(c, "查询类型失败")
		return
	}
	utils.Success(c, genres)
}

// ListCountries 国家列表
func (h *Handler) ListCountries(c *gin.Context) {
	countries, err := h.Repos.Country.List()
	if err != nil {
		utils.InternalServerError(c, "查询国家失败")
		return
	}
	utils.Success(c, countries)
}
