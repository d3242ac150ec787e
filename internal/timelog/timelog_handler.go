package timelog

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"payrollpro/internal/shared/apperror"
	"payrollpro/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Today(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	resp, err := h.service.Today(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ClockIn(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	defer h.releaseIdempotencyLock(c)

	resp, err := h.service.ClockIn(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.cacheIdempotentResult(c, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ClockOut(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	defer h.releaseIdempotencyLock(c)

	resp, err := h.service.ClockOut(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.cacheIdempotentResult(c, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("user_id_validated")
	month := c.Query("month")

	resp, err := h.service.ListByMonth(c.Request.Context(), userID, month)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.writePage(c, resp)
}

// ListForUser serves the admin roster's scoped log viewer.
func (h *Handler) ListForUser(c *gin.Context) {
	targetID := c.Param("id")
	month := c.Query("month")

	resp, err := h.service.ListByMonth(c.Request.Context(), targetID, month)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.writePage(c, resp)
}

func (h *Handler) writePage(c *gin.Context, resp []TimeLogResponse) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "31"))
	if pageSize < 1 {
		pageSize = 31
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) releaseIdempotencyLock(c *gin.Context) {
	if h.rdb == nil {
		return
	}
	lockKey, _ := c.Get("idempotency_lock_key")
	if lk, ok := lockKey.(string); ok && lk != "" {
		_ = h.rdb.Del(c.Request.Context(), lk).Err()
	}
}

func (h *Handler) cacheIdempotentResult(c *gin.Context, resp TimeLogResponse) {
	if h.rdb == nil {
		return
	}
	cacheKey, _ := c.Get("idempotency_cache_key")
	if ck, ok := cacheKey.(string); ok && ck != "" {
		if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
			_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
		}
	}
}
