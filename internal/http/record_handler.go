package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cadastro-api/internal/domain"
	"cadastro-api/internal/service"
)

// RecordHandler mantiene dependencias para los endpoints de cadastros.
type RecordHandler struct {
	logger  *zap.Logger
	records *service.RecordService
}

// NewRecordHandler crea una instancia de RecordHandler con sus dependencias.
func NewRecordHandler(logger *zap.Logger, records *service.RecordService) *RecordHandler {
	return &RecordHandler{
		logger:  logger,
		records: records,
	}
}

// ListRecords maneja GET /records.
func (h *RecordHandler) ListRecords(c *gin.Context) {
	q := service.ListQuery{
		ID:        c.Query("id"),
		Recipient: c.Query("recipient"),
		Sender:    c.Query("sender"),
		Note:      c.Query("note"),
		Page:      c.Query("page"),
	}

	records, err := h.records.List(c.Request.Context(), q)
	if err != nil {
		h.logger.Error("list records failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "could not list records",
			"details": err.Error(),
		})
		return
	}

	// Página vacía no es un error: misma clase de respuesta, otro cuerpo.
	if len(records) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message": "No records found.",
			"data":    []domain.Record{},
		})
		return
	}

	c.JSON(http.StatusOK, records)
}

// CreateRecord maneja POST /records.
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	var req struct {
		Sender    string  `json:"sender"`
		Recipient string  `json:"recipient"`
		Note      *string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create record request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	id, err := h.records.Create(c.Request.Context(), service.CreateInput{
		Sender:    req.Sender,
		Recipient: req.Recipient,
		Note:      req.Note,
	})
	if err != nil {
		var missing *service.MissingFieldsError
		if errors.As(err, &missing) {
			c.JSON(http.StatusBadRequest, gin.H{"error": missing.Error()})
			return
		}
		h.logger.Error("create record failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create record"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Record created successfully.",
		"id":      id,
	})
}

// UpdateRecord maneja PUT /records/edit/:id. Reemplaza sender, recipient y
// note sin preservar valores previos; note ausente se escribe NULL.
func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// Un id no numérico no identifica ninguna fila.
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found."})
		return
	}

	var req struct {
		Sender    string  `json:"sender"`
		Recipient string  `json:"recipient"`
		Note      *string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update record request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err = h.records.Update(c.Request.Context(), id, service.UpdateInput{
		Sender:    req.Sender,
		Recipient: req.Recipient,
		Note:      req.Note,
	})
	if err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found."})
			return
		}
		h.logger.Error("update record failed", zap.Error(err), zap.Int64("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Record updated successfully."})
}
