// Package handlers exposes the record store, reports and job-card printing
// over a JSON API.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/apex-maintenance/internal/db"
	"github.com/ukydev/apex-maintenance/internal/models"
)

// Confirmation prompts shown before destructive actions.
const (
	DeleteOwnerPrompt   = "Delete this customer? All their associated machines will also be deleted. This cannot be undone."
	DeleteMachinePrompt = "Are you sure you want to delete this machinery? This action cannot be undone."
	DeleteJobCardPrompt = "Delete this maintenance record permanently?"
)

// RecordStore is the record store as seen by the handlers.
type RecordStore interface {
	Get(ctx context.Context) (models.AppData, error)
	Save(ctx context.Context, data models.AppData) error
	AddJobCard(ctx context.Context, job models.JobCard) error
	UpdateJobCard(ctx context.Context, job models.JobCard) error
	DeleteJobCard(ctx context.Context, id string) error
	AddOwner(ctx context.Context, owner models.Owner) error
	UpdateOwner(ctx context.Context, owner models.Owner) error
	DeleteOwner(ctx context.Context, id string) error
	AddMachine(ctx context.Context, machine models.Machine) error
	UpdateMachine(ctx context.Context, machine models.Machine) error
	DeleteMachine(ctx context.Context, id string) error
}

// Compile-time check that the record store satisfies RecordStore.
var _ RecordStore = (*db.Store)(nil)

func newID() string {
	return uuid.NewString()
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondInvalid writes a 400 for a failed models.Validate call.
func respondInvalid(c *gin.Context, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Fields})
		return
	}
	respondError(c, http.StatusBadRequest, err.Error())
}

// loadData reads the store, writing a 500 on failure.
func loadData(c *gin.Context, store RecordStore, logger *log.Logger) (models.AppData, bool) {
	data, err := store.Get(c.Request.Context())
	if err != nil {
		logger.WithError(err).Error("Failed to read record store")
		respondError(c, http.StatusInternalServerError, "Failed to read records")
		return models.AppData{}, false
	}
	return data, true
}

// storeFailed logs a failed write and responds with a 500.
func storeFailed(c *gin.Context, logger *log.Logger, err error, action string) {
	logger.WithError(err).WithField("action", action).Error("Record store write failed")
	respondError(c, http.StatusInternalServerError, "Failed to "+action)
}
