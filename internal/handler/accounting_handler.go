package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"club-hub/internal/pkg"
	"club-hub/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AccountingHandler struct {
	svc *service.AccountingService
}

// EntryUpdateReq 部分更新：只应用出现的字段
type EntryUpdateReq struct {
	Date        *string `json:"date"`
	Manager     *string `json:"manager"`
	Description *string `json:"description"`
	Amount      *int64  `json:"amount"`
}

func NewAccountingHandler(svc *service.AccountingService) *AccountingHandler {
	return &AccountingHandler{svc: svc}
}

// Create 新增会计内容，multipart表单 + 可选凭证照片
func (h *AccountingHandler) Create(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || clubID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid club id"})
		return
	}

	date := c.PostForm("date")
	description := c.PostForm("description")
	manager := c.PostForm("manager")
	amount, err := strconv.ParseInt(c.PostForm("amount"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid amount"})
		return
	}

	photo, err := c.FormFile("photo")
	if err != nil && err != http.ErrMissingFile {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid photo upload"})
		return
	}

	entry, err := h.svc.AddEntry(clubID, date, description, amount, manager, photo)
	if err != nil {
		c.JSON(pkg.StatusOf(err), gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// List 列出会计内容；?export=true 时导出xlsx附件
func (h *AccountingHandler) List(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || clubID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid club id"})
		return
	}

	if c.Query("export") == "true" {
		buf, clubName, err := h.svc.ExportLedger(clubID)
		if err != nil {
			c.JSON(pkg.StatusOf(err), gin.H{"msg": err.Error()})
			return
		}

		// 文件名带社团名，非ASCII按RFC 5987百分号编码
		filename := fmt.Sprintf("ledger_%s.xlsx", clubName)
		c.Header("Content-Disposition",
			fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
		c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
		return
	}

	list, err := h.svc.ListEntries(clubID)
	if err != nil {
		c.JSON(pkg.StatusOf(err), gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *AccountingHandler) Update(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || clubID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid club id"})
		return
	}
	entryID, err := strconv.ParseUint(c.Param("entry_id"), 10, 64)
	if err != nil || entryID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid entry id"})
		return
	}

	var req EntryUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	fields := map[string]any{}
	if req.Date != nil {
		fields["date"] = *req.Date
	}
	if req.Manager != nil {
		fields["manager"] = *req.Manager
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Amount != nil {
		fields["amount"] = *req.Amount
	}

	entry, err := h.svc.UpdateEntry(clubID, entryID, fields)
	if err != nil {
		c.JSON(pkg.StatusOf(err), gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *AccountingHandler) Delete(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || clubID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid club id"})
		return
	}
	entryID, err := strconv.ParseUint(c.Param("entry_id"), 10, 64)
	if err != nil || entryID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid entry id"})
		return
	}

	if err := h.svc.DeleteEntry(clubID, entryID); err != nil {
		c.JSON(pkg.StatusOf(err), gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}
