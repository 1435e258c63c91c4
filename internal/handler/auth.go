package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/cinetheque/internal/middleware"
	"github.com/user/cinetheque/internal/utils"
)

// registerRequest 注册请求
type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=2,max=50"`
	Password string `json:"password" binding:"required,min=8"`
}

// loginRequest 登录请求
type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register 注册用户。第一个注册的用户自动成为管理员
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "注册信息不完整")
		return
	}

	if existing, _ := h.Repos.User.FindByEmail(req.Email); existing != nil {
		utils.BadRequest(c, "邮箱已被注册")
		return
	}

	user, err := h.Repos.User.Create(req.Email, req.Username, req.Password)
	if err != nil {
		utils.InternalServerError(c, "注册失败")
		return
	}

	if count, _ := h.Repos.User.Count(); count == 1 {
		if err := h.Repos.User.UpdateRole(user.ID, "admin"); err == nil {
			user.Role = "admin"
		}
	}

	utils.Success(c, user)
}

// Login 登录并下发 JWT Cookie
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "登录信息不完整")
		return
	}

	user, err := h.Repos.User.FindByEmail(req.Email)
	if err != nil {
		utils.InternalServerError(c, "登录失败")
		return
	}
	if user == nil || !h.Repos.User.CheckPassword(user, req.Password) {
		utils.Unauthorized(c, "邮箱或密码错误")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, user.Role, h.Config.AppSecret, h.Config.JWTExpiry)
	if err != nil {
		utils.InternalServerError(c, "签发 Token 失败")
		return
	}

	c.SetCookie("token", token, int(h.Config.JWTExpiry.Seconds()), "/", "", false, true)
	utils.Success(c, gin.H{"token": token, "user": user})
}

// Logout 退出登录
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	utils.Success(c, nil)
}
