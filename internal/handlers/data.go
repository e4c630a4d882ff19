package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/apex-maintenance/internal/cloudsync"
	"github.com/ukydev/apex-maintenance/internal/insight"
	"github.com/ukydev/apex-maintenance/internal/models"
)

// DataHandler reads and replaces the whole record document.
type DataHandler struct {
	store  RecordStore
	logger *log.Logger
}

// NewDataHandler creates a new data handler
func NewDataHandler(store RecordStore, logger *log.Logger) *DataHandler {
	return &DataHandler{store: store, logger: logger}
}

// Get returns owners, machines and job cards in one document.
func (h *DataHandler) Get(c *gin.Context) {
	data, ok := loadData(c, h.store, h.logger)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, data)
}

// Replace overwrites the whole document with the request body.
func (h *DataHandler) Replace(c *gin.Context) {
	var data models.AppData
	if err := c.ShouldBindJSON(&data); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}
	data.Normalize()
	if err := h.store.Save(c.Request.Context(), data); err != nil {
		storeFailed(c, h.logger, err, "save records")
		return
	}
	h.logger.WithFields(log.Fields{
		"owners":    len(data.Owners),
		"machines":  len(data.Machines),
		"job_cards": len(data.JobCards),
	}).Info("Record document replaced")
	c.JSON(http.StatusOK, data)
}

// InsightHandler asks for a narrative summary of the current records.
type InsightHandler struct {
	store    RecordStore
	insights *insight.Service
	logger   *log.Logger
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(store RecordStore, insights *insight.Service, logger *log.Logger) *InsightHandler {
	return &InsightHandler{store: store, insights: insights, logger: logger}
}

// Analyze always answers 200; failures come back as a fixed message.
func (h *InsightHandler) Analyze(c *gin.Context) {
	data, ok := loadData(c, h.store, h.logger)
	if !ok {
		return
	}
	text := h.insights.Analyze(c.Request.Context(), data.JobCards, data.Machines)
	c.JSON(http.StatusOK, gin.H{"analysis": text})
}

// SyncHandler starts a simulated cloud sync.
type SyncHandler struct {
	syncer *cloudsync.Syncer
	logger *log.Logger
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(syncer *cloudsync.Syncer, logger *log.Logger) *SyncHandler {
	return &SyncHandler{syncer: syncer, logger: logger}
}

// Start returns 202 at once; the sync finishes after its delay.
func (h *SyncHandler) Start(c *gin.Context) {
	h.syncer.Start(context.WithoutCancel(c.Request.Context()))
	h.logger.Info("Cloud sync started")
	c.JSON(http.StatusAccepted, gin.H{"status": "syncing"})
}
