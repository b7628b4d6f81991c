package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"club-hub/internal/pkg"
	"club-hub/internal/service"
)

type ClubHandler struct {
	svc *service.ClubService
}

type ClubJoinReq struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ClubUpdateReq 部分更新：只应用出现的字段
type ClubUpdateReq struct {
	Name        *string `json:"name"`
	ClubType    *string `json:"club_type"`
	Topic       *string `json:"topic"`
	Description *string `json:"description"`
	Password    *string `json:"password"`
}

func NewClubHandler(svc *service.ClubService) *ClubHandler {
	return &ClubHandler{svc: svc}
}

// Create 创建社团，multipart表单 + 可选图片
func (h *ClubHandler) Create(c *gin.Context) {
	name := c.PostForm("name")
	clubType := c.PostForm("club_type")
	topic := c.PostForm("topic")
	password := c.PostForm("password")
	description := c.PostForm("description")

	// 图片可选，缺失不算错
	image, err := c.FormFile("file")
	if err != nil && err != http.ErrMissingFile {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid image upload"})
		return
	}

	club, err := h.svc.CreateClub(name, clubType, topic, password, description, image)
	if err != nil {
		c.JSON(pkg.StatusOf(err), gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, club)
}

// List 列表或按名称搜索（?name= 出现但为空串按参数错误处理）
func (h *ClubHandler) List(c *gin.Context) {
	if name, ok := c.GetQuery("name"); ok {
		list, err := h.svc.SearchClubs(name)
		if err != nil {
			c.JSON(pkg.StatusOf(err), gin.H{"msg": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"list": list})
		return
	}

	list, err := h.svc.ListClubs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *ClubHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid club id"})
		return
	}

	club, err := h.svc.GetClub(id)
	if err != nil {
		c.JSON(pkg.StatusOf(err), gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, club)
}

// Join 按名称+密码入会
func (h *ClubHandler) Join(c *gin.Context) {
	var req ClubJoinReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	club, err := h.svc.JoinClub(req.Name, req.Password)
	if err != nil {
		c.JSON(pkg.StatusOf(err), gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "joined successfully", "club_id": club.ID})
}

func (h *ClubHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid club id"})
		return
	}

	var req ClubUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.ClubType != nil {
		fields["club_type"] = *req.ClubType
	}
	if req.Topic != nil {
		fields["topic"] = *req.Topic
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Password != nil {
		fields["password"] = *req.Password
	}

	club, err := h.svc.UpdateClub(id, fields)
	if err != nil {
		c.JSON(pkg.StatusOf(err), gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, club)
}

func (h *ClubHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid club id"})
		return
	}

	if err := h.svc.DeleteClub(id); err != nil {
		c.JSON(pkg.StatusOf(err), gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}
