package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/apex-maintenance/internal/report"
)

// ReportHandler serves the monthly report, its export and the dashboard.
type ReportHandler struct {
	reports *report.Service
	logger  *log.Logger
	now     func() time.Time
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports *report.Service, logger *log.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, logger: logger, now: time.Now}
}

// PartsCostRequest is the body of a per-row parts cost edit.
type PartsCostRequest struct {
	PartsCost *float64 `json:"partsCost" binding:"required"`
}

// period reads ?start= and ?end=, defaulting to the current month so far.
func (h *ReportHandler) period(c *gin.Context) report.Period {
	p := report.DefaultPeriod(h.now())
	if v := c.Query("start"); v != "" {
		p.Start = v
	}
	if v := c.Query("end"); v != "" {
		p.End = v
	}
	return p
}

// Monthly returns the report for the requested period.
func (h *ReportHandler) Monthly(c *gin.Context) {
	r, err := h.reports.Monthly(c.Request.Context(), h.period(c))
	if err != nil {
		h.logger.WithError(err).Error("Failed to build report")
		respondError(c, http.StatusInternalServerError, "Failed to build report")
		return
	}
	c.JSON(http.StatusOK, r)
}

// UpdatePartsCost overrides one row's parts cost and returns the
// recomputed report.
func (h *ReportHandler) UpdatePartsCost(c *gin.Context) {
	var req PartsCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "partsCost is required")
		return
	}
	r, err := h.reports.UpdatePartsCost(c.Request.Context(), c.Param("id"), *req.PartsCost, h.period(c))
	if err != nil {
		if errors.Is(err, report.ErrJobCardNotFound) {
			respondError(c, http.StatusNotFound, "Job card not found")
			return
		}
		h.logger.WithError(err).Error("Failed to update parts cost")
		respondError(c, http.StatusInternalServerError, "Failed to update parts cost")
		return
	}
	c.JSON(http.StatusOK, r)
}

// Export streams the report as an xlsx workbook.
func (h *ReportHandler) Export(c *gin.Context) {
	p := h.period(c)
	r, err := h.reports.Monthly(c.Request.Context(), p)
	if err != nil {
		h.logger.WithError(err).Error("Failed to build report")
		respondError(c, http.StatusInternalServerError, "Failed to build report")
		return
	}
	var buf bytes.Buffer
	if err := report.ExportExcel(r, &buf); err != nil {
		h.logger.WithError(err).Error("Failed to export report")
		respondError(c, http.StatusInternalServerError, "Failed to export report")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.ExcelFilename(p)))
	c.Data(http.StatusOK, report.ExcelContentType, buf.Bytes())
}

// Dashboard returns statistics over all records.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	d, err := h.reports.Dashboard(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to build dashboard")
		respondError(c, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, d)
}
