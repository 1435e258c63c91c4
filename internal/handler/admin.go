package handler

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/user/cinetheque/internal/service"
	"github.com/user/cinetheque/internal/utils"
)

// ==================== 导入管理 ====================

// importRequest 导入请求：服务端本地的 CSV 文件名（相对 IMPORT_DIR）
type importRequest struct {
	File string `json:"file" binding:"required"`
}

// runImport 运行一次导入并返回运行报告
func (h *Handler) runImport(c *gin.Context, kind string) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "缺少 file 参数")
		return
	}

	// 导入文件只允许取自配置的导入目录
	name := filepath.Base(req.File)
	if name == "." || strings.HasPrefix(name, "..") {
		utils.BadRequest(c, "无效的文件名")
		return
	}
	path := filepath.Join(h.Config.ImportDir, name)

	report, err := h.Importer.Run(kind, path)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, report)
}

// ImportFilms 导入电影 CSV
func (h *Handler) ImportFilms(c *gin.Context) {
	h.runImport(c, service.KindFilms)
}

// ImportActors 导入演员 CSV
func (h *Handler) ImportActors(c *gin.Context) {
	h.runImport(c, service.KindActors)
}

// ImportDirectors 导入导演 CSV
func (h *Handler) ImportDirectors(c *gin.Context) {
	h.runImport(c, service.KindDirectors)
}

// ListImportRuns 最近的导入运行留档
func (h *Handler) ListImportRuns(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	runs, err := h.Repos.ImportRun.ListRecent(limit)
	if err != nil {
		utils.InternalServerError(c, "查询导入记录失败")
		return
	}

	utils.Success(c, runs)
}
