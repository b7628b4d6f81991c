package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"club-hub/internal/model"
	"club-hub/internal/pkg"
	"club-hub/internal/service"
)

type OperationLogHandler struct {
	svc *service.OperationLogService
}

func NewOperationLogHandler(svc *service.OperationLogService) *OperationLogHandler {
	return &OperationLogHandler{svc: svc}
}

// Create 创建活动记录：multipart表单，log_data为JSON负载，files为可选附件
func (h *OperationLogHandler) Create(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || clubID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid club id"})
		return
	}

	userIDAny, ok := c.Get("user_id")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "unauthorized"})
		return
	}
	authorID := userIDAny.(uint64)

	var in service.LogInput
	if err := json.Unmarshal([]byte(c.PostForm("log_data")), &in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid log payload", "detail": err.Error()})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid multipart form"})
		return
	}

	log, err := h.svc.CreateLog(clubID, authorID, in, form.File["files"])
	if err != nil {
		c.JSON(pkg.StatusOf(err), gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, logView(log))
}

func (h *OperationLogHandler) List(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || clubID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid club id"})
		return
	}

	list, err := h.svc.ListLogs(clubID)
	if err != nil {
		c.JSON(pkg.StatusOf(err), gin.H{"msg": err.Error()})
		return
	}

	views := make([]gin.H, 0, len(list))
	for i := range list {
		views = append(views, logView(&list[i]))
	}
	c.JSON(http.StatusOK, gin.H{"list": views})
}

func (h *OperationLogHandler) Get(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || clubID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid club id"})
		return
	}
	logID, err := strconv.ParseUint(c.Param("log_id"), 10, 64)
	if err != nil || logID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid log id"})
		return
	}

	log, err := h.svc.GetLog(clubID, logID)
	if err != nil {
		c.JSON(pkg.StatusOf(err), gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logView(log))
}

// logView 序列化视图：content以原始JSON返回
func logView(log *model.OperationLog) gin.H {
	content := json.RawMessage("{}")
	if log.Content != "" {
		content = json.RawMessage(log.Content)
	}
	return gin.H{
		"id":         log.ID,
		"club_id":    log.ClubID,
		"author_id":  log.AuthorID,
		"title":      log.Title,
		"category":   log.Category,
		"start_date": log.StartDate,
		"end_date":   log.EndDate,
		"team":       log.Team,
		"content":    content,
		"created_at": log.CreatedAt,
		"updated_at": log.UpdatedAt,
		"files":      log.Files,
	}
}
