package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tradejournal/internal/storage"
)

type UploadHandler struct {
	Store *storage.ScreenshotStore
}

func (h *UploadHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/uploads")
	g.POST("/screenshot", h.presign)
	g.POST("/screenshot/direct", h.direct)
}

type presignRequest struct {
	AccountID   string `json:"account_id"`
	TradeID     string `json:"trade_id"`
	ContentType string `json:"content_type"`
}

// @Summary Presign a screenshot upload
// @Tags uploads
// @Accept json
// @Param body body presignRequest true "upload target"
// @Success 200 {object} apiResponse
// @Router /api/v1/uploads/screenshot [post]
func (h *UploadHandler) presign(c *gin.Context) {
	if !h.Store.Enabled() {
		Error(c, http.StatusServiceUnavailable, "screenshot storage not configured", nil)
		return
	}
	var req presignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	out, err := h.Store.PresignUpload(c.Request.Context(), req.AccountID, req.TradeID, req.ContentType)
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	Ok(c, out, nil)
}

// direct streams a multipart file straight through the server. Presign
// is preferred; this path exists for clients that cannot PUT to S3.
//
// @Summary Upload a screenshot through the server
// @Tags uploads
// @Accept multipart/form-data
// @Param file formData file true "screenshot"
// @Param account_id formData string false "owning account"
// @Param trade_id formData string false "owning trade"
// @Success 200 {object} apiResponse
// @Router /api/v1/uploads/screenshot/direct [post]
func (h *UploadHandler) direct(c *gin.Context) {
	if !h.Store.Enabled() {
		Error(c, http.StatusServiceUnavailable, "screenshot storage not configured", nil)
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		Error(c, http.StatusBadRequest, "missing file", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		Error(c, http.StatusBadRequest, "unreadable file", nil)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if strings.TrimSpace(contentType) == "" {
		contentType = "image/png"
	}
	url, err := h.Store.Upload(
		c.Request.Context(),
		c.PostForm("account_id"),
		c.PostForm("trade_id"),
		contentType,
		file,
	)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"url": url}, nil)
}
