package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"club-hub/internal/model"
	"club-hub/internal/pkg"
	"club-hub/internal/service"
)

type MemberHandler struct {
	svc *service.MemberService
}

type MemberCreateReq struct {
	Name       string `json:"name" binding:"required"`
	Contact    string `json:"contact"`
	Major      string `json:"major"`
	Generation int    `json:"generation"`
	Role       string `json:"role"`
	Memo       string `json:"memo"`
}

// MemberUpdateReq 部分更新：只应用出现的字段
type MemberUpdateReq struct {
	Name       *string `json:"name"`
	Contact    *string `json:"contact"`
	Major      *string `json:"major"`
	Generation *int    `json:"generation"`
	Role       *string `json:"role"`
	Memo       *string `json:"memo"`
}

func NewMemberHandler(svc *service.MemberService) *MemberHandler {
	return &MemberHandler{svc: svc}
}

func (h *MemberHandler) Create(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || clubID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid club id"})
		return
	}

	var req MemberCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	member, err := h.svc.AddMember(clubID, &model.ClubMember{
		Name:       req.Name,
		Contact:    req.Contact,
		Major:      req.Major,
		Generation: req.Generation,
		Role:       req.Role,
		Memo:       req.Memo,
	})
	if err != nil {
		c.JSON(pkg.StatusOf(err), gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, member)
}

func (h *MemberHandler) List(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || clubID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid club id"})
		return
	}

	list, err := h.svc.ListMembers(clubID)
	if err != nil {
		c.JSON(pkg.StatusOf(err), gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *MemberHandler) Update(c *gin.Context) {
	memberID, err := strconv.ParseUint(c.Param("member_id"), 10, 64)
	if err != nil || memberID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid member id"})
		return
	}

	var req MemberUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Contact != nil {
		fields["contact"] = *req.Contact
	}
	if req.Major != nil {
		fields["major"] = *req.Major
	}
	if req.Generation != nil {
		fields["generation"] = *req.Generation
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}
	if req.Memo != nil {
		fields["memo"] = *req.Memo
	}

	member, err := h.svc.UpdateMember(memberID, fields)
	if err != nil {
		c.JSON(pkg.StatusOf(err), gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) Delete(c *gin.Context) {
	memberID, err := strconv.ParseUint(c.Param("member_id"), 10, 64)
	if err != nil || memberID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid member id"})
		return
	}

	if err := h.svc.RemoveMember(memberID); err != nil {
		c.JSON(pkg.StatusOf(err), gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}
