package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/apex-maintenance/internal/models"
)

// OwnerHandler handles customer requests
type OwnerHandler struct {
	store  RecordStore
	logger *log.Logger
}

// NewOwnerHandler creates a new owner handler
func NewOwnerHandler(store RecordStore, logger *log.Logger) *OwnerHandler {
	return &OwnerHandler{store: store, logger: logger}
}

// List returns all owners, filtered by ?search= when given.
func (h *OwnerHandler) List(c *gin.Context) {
	data, ok := loadData(c, h.store, h.logger)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SearchOwners(data.Owners, c.Query("search")))
}

// Create adds an owner. Missing area codes default to +249.
func (h *OwnerHandler) Create(c *gin.Context) {
	owner := models.NewOwner("", "", "")
	if err := c.ShouldBindJSON(&owner); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}
	owner.ID = newID()
	if owner.AreaCode == "" {
		owner.AreaCode = models.DefaultAreaCode
	}
	if err := models.Validate(owner); err != nil {
		respondInvalid(c, err)
		return
	}
	if err := h.store.AddOwner(c.Request.Context(), owner); err != nil {
		storeFailed(c, h.logger, err, "create owner")
		return
	}
	h.logger.WithField("owner_id", owner.ID).Info("Owner created")
	c.JSON(http.StatusCreated, owner)
}

// Update replaces an owner's fields.
func (h *OwnerHandler) Update(c *gin.Context) {
	id := c.Param("id")
	data, ok := loadData(c, h.store, h.logger)
	if !ok {
		return
	}
	owner, found := data.OwnerByID(id)
	if !found {
		respondError(c, http.StatusNotFound, "Owner not found")
		return
	}
	if err := c.ShouldBindJSON(&owner); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}
	owner.ID = id
	if err := models.Validate(owner); err != nil {
		respondInvalid(c, err)
		return
	}
	if err := h.store.UpdateOwner(c.Request.Context(), owner); err != nil {
		storeFailed(c, h.logger, err, "update owner")
		return
	}
	c.JSON(http.StatusOK, owner)
}

// Delete removes an owner together with its machines.
func (h *OwnerHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	data, ok := loadData(c, h.store, h.logger)
	if !ok {
		return
	}
	if _, found := data.OwnerByID(id); !found {
		respondError(c, http.StatusNotFound, "Owner not found")
		return
	}
	if err := h.store.DeleteOwner(c.Request.Context(), id); err != nil {
		storeFailed(c, h.logger, err, "delete owner")
		return
	}
	h.logger.WithField("owner_id", id).Info("Owner and machines deleted")
	c.Status(http.StatusNoContent)
}
