package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/apex-maintenance/internal/models"
)

// MachineHandler handles machinery requests
type MachineHandler struct {
	store  RecordStore
	logger *log.Logger
}

// NewMachineHandler creates a new machine handler
func NewMachineHandler(store RecordStore, logger *log.Logger) *MachineHandler {
	return &MachineHandler{store: store, logger: logger}
}

// List returns all machines, filtered by ?search= when given.
func (h *MachineHandler) List(c *gin.Context) {
	data, ok := loadData(c, h.store, h.logger)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SearchMachines(data.Machines, c.Query("search")))
}

// Brands lists the selectable manufacturers.
func (h *MachineHandler) Brands(c *gin.Context) {
	c.JSON(http.StatusOK, models.Brands)
}

// Create adds a machine, starting from the form defaults.
func (h *MachineHandler) Create(c *gin.Context) {
	machine := models.NewMachine("", "")
	if err := c.ShouldBindJSON(&machine); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}
	machine.ID = newID()
	if err := models.Validate(machine); err != nil {
		respondInvalid(c, err)
		return
	}
	if err := h.store.AddMachine(c.Request.Context(), machine); err != nil {
		storeFailed(c, h.logger, err, "create machine")
		return
	}
	h.logger.WithFields(log.Fields{"machine_id": machine.ID, "owner_id": machine.OwnerID}).Info("Machine created")
	c.JSON(http.StatusCreated, machine)
}

// Update replaces a machine's fields. Hours may be set freely here.
func (h *MachineHandler) Update(c *gin.Context) {
	id := c.Param("id")
	data, ok := loadData(c, h.store, h.logger)
	if !ok {
		return
	}
	machine, found := data.MachineByID(id)
	if !found {
		respondError(c, http.StatusNotFound, "Machine not found")
		return
	}
	if err := c.ShouldBindJSON(&machine); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}
	machine.ID = id
	if err := models.Validate(machine); err != nil {
		respondInvalid(c, err)
		return
	}
	if err := h.store.UpdateMachine(c.Request.Context(), machine); err != nil {
		storeFailed(c, h.logger, err, "update machine")
		return
	}
	c.JSON(http.StatusOK, machine)
}

// Delete removes a machine. Its job cards are kept.
func (h *MachineHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	data, ok := loadData(c, h.store, h.logger)
	if !ok {
		return
	}
	if _, found := data.MachineByID(id); !found {
		respondError(c, http.StatusNotFound, "Machine not found")
		return
	}
	if err := h.store.DeleteMachine(c.Request.Context(), id); err != nil {
		storeFailed(c, h.logger, err, "delete machine")
		return
	}
	c.Status(http.StatusNoContent)
}
