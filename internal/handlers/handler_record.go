package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/budgetplanner/budget_planner_app/internal/apperrors"
	portssvc "github.com/budgetplanner/budget_planner_app/internal/core/ports/services"
	"github.com/budgetplanner/budget_planner_app/internal/dto"
	"github.com/budgetplanner/budget_planner_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// recordHandler handles HTTP requests related to transaction records.
type recordHandler struct {
	recordService portssvc.RecordSvcFacade
}

func newRecordHandler(rs portssvc.RecordSvcFacade) *recordHandler {
	return &recordHandler{
		recordService: rs,
	}
}

// registerRecordRoutes registers routes related to transaction records.
func registerRecordRoutes(rg *gin.RouterGroup, recordService portssvc.RecordSvcFacade) {
	h := newRecordHandler(recordService)

	records := rg.Group("/records")
	{
		records.POST("", h.createRecord)
		records.GET("", h.listRecords)
		records.GET("/:id", h.getRecord)
		records.PUT("/:id", h.updateRecord)
		records.DELETE("/:id", h.deleteRecord)
	}
}

// createRecord godoc
// @Summary Create a new transaction record
// @Description Persists a record and adjusts the owning account's balance by the signed amount
// @Tags records
// @Accept  json
// @Produce  json
// @Param   record body dto.CreateRecordRequest true "Record details"
// @Success 201 {object} dto.RecordResponse
// @Failure 400 {object} map[string]string "Invalid input format or unknown account"
// @Failure 500 {object} map[string]string "Failed to create record"
// @Router /records [post]
func (h *recordHandler) createRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRecord", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.recordService.CreateRecord(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found for new record", slog.Uint64("account_id", req.AccountID))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to create record in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create record"})
		}
		return
	}

	logger.Info("Record created successfully", slog.Uint64("record_id", record.ID))
	c.JSON(http.StatusCreated, dto.ToRecordResponse(record, nil))
}

// listRecords godoc
// @Summary List transaction records
// @Description Lists records matching the filter sidebar's predicates and resolves the date range
// @Tags records
// @Produce  json
// @Param   accountId query int false "Owning account id; 0 or absent matches all"
// @Param   search query string false "Case-insensitive substring over description, category and account name"
// @Param   type query string false "all, income, expense or transfer" default(all)
// @Param   minAmount query number false "Minimum absolute amount"
// @Param   maxAmount query number false "Maximum absolute amount"
// @Param   range query string false "Named preset: this_week, this_month, this_year, last_30, last_90, all"
// @Param   start query string false "Explicit range start (RFC 3339); overrides the preset"
// @Param   end query string false "Explicit range end (RFC 3339); overrides the preset"
// @Success 200 {object} dto.ListRecordsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list records"
// @Router /records [get]
func (h *recordHandler) listRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListRecords", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	records, accountNames, dateRange, err := h.recordService.ListRecords(c.Request.Context(), params, time.Now())
	if err != nil {
		logger.Error("Failed to list records from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list records"})
		return
	}

	resp := dto.ListRecordsResponse{
		Records: dto.ToListRecordResponse(records, accountNames),
		Total:   len(records),
		Range: dto.DateRangeInfo{
			Label: dateRange.Label,
			Start: dateRange.Start,
			End:   dateRange.End,
		},
	}
	c.JSON(http.StatusOK, resp)
}

// getRecord godoc
// @Summary Get a transaction record by ID
// @Tags records
// @Produce  json
// @Param   id path int true "Record ID"
// @Success 200 {object} dto.RecordResponse
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to retrieve record"
// @Router /records/{id} [get]
func (h *recordHandler) getRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	record, err := h.recordService.GetRecordByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Record not found", slog.Uint64("record_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		} else {
			logger.Error("Failed to get record from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve record"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRecordResponse(record, nil))
}

// updateRecord godoc
// @Summary Update a transaction record
// @Description Merges the provided fields over the existing record; account balances are not re-reconciled
// @Tags records
// @Accept  json
// @Produce  json
// @Param   id path int true "Record ID"
// @Param   record body dto.UpdateRecordRequest true "Fields to update"
// @Success 200 {object} dto.RecordResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to update record"
// @Router /records/{id} [put]
func (h *recordHandler) updateRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRecord", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.recordService.UpdateRecord(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Record not found for update", slog.Uint64("record_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		} else {
			logger.Error("Failed to update record in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update record"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRecordResponse(record, nil))
}

// deleteRecord godoc
// @Summary Delete a transaction record
// @Description Removes the record; the balance adjustment made at creation is not reverted
// @Tags records
// @Produce  json
// @Param   id path int true "Record ID"
// @Success 204 "Record deleted"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 500 {object} map[string]string "Failed to delete record"
// @Router /records/{id} [delete]
func (h *recordHandler) deleteRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.recordService.DeleteRecord(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete record in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete record"})
		return
	}

	c.Status(http.StatusNoContent)
}
