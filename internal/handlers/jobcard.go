package handlers

import (
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/apex-maintenance/internal/jobcard"
	"github.com/ukydev/apex-maintenance/internal/models"
)

// JobCardHandler handles maintenance record requests
type JobCardHandler struct {
	store  RecordStore
	logger *log.Logger
	now    func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewJobCardHandler creates a new job card handler
func NewJobCardHandler(store RecordStore, logger *log.Logger) *JobCardHandler {
	return &JobCardHandler{
		store:  store,
		logger: logger,
		now:    time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (h *JobCardHandler) draft() models.JobCard {
	h.mu.Lock()
	defer h.mu.Unlock()
	return models.NewJobCard(h.now(), h.rnd)
}

// assignPartIDs gives every spare part without an id a fresh one.
func assignPartIDs(job *models.JobCard) {
	for i := range job.SpareParts {
		if job.SpareParts[i].ID == "" {
			job.SpareParts[i].ID = newID()
		}
	}
}

// New returns a draft carrying the form defaults. Nothing is stored.
func (h *JobCardHandler) New(c *gin.Context) {
	c.JSON(http.StatusOK, h.draft())
}

// List returns every job card, newest first.
func (h *JobCardHandler) List(c *gin.Context) {
	data, ok := loadData(c, h.store, h.logger)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, data.JobCards)
}

// Get returns one job card.
func (h *JobCardHandler) Get(c *gin.Context) {
	data, ok := loadData(c, h.store, h.logger)
	if !ok {
		return
	}
	job, found := data.JobCardByID(c.Param("id"))
	if !found {
		respondError(c, http.StatusNotFound, "Job card not found")
		return
	}
	c.JSON(http.StatusOK, job)
}

// Create stores a job card. Fields absent from the body keep the draft
// defaults, and the machine's hours are ratcheted up to the arrival reading.
func (h *JobCardHandler) Create(c *gin.Context) {
	job := h.draft()
	if err := c.ShouldBindJSON(&job); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}
	job.ID = newID()
	assignPartIDs(&job)
	if err := models.Validate(job); err != nil {
		respondInvalid(c, err)
		return
	}
	if err := h.store.AddJobCard(c.Request.Context(), job); err != nil {
		storeFailed(c, h.logger, err, "create job card")
		return
	}
	h.logger.WithFields(log.Fields{
		"job_card_id": job.ID,
		"job_card_no": job.JobCardNo,
		"machine_id":  job.MachineID,
	}).Info("Job card created")
	c.JSON(http.StatusCreated, job)
}

// Update replaces a job card's fields.
func (h *JobCardHandler) Update(c *gin.Context) {
	id := c.Param("id")
	data, ok := loadData(c, h.store, h.logger)
	if !ok {
		return
	}
	job, found := data.JobCardByID(id)
	if !found {
		respondError(c, http.StatusNotFound, "Job card not found")
		return
	}
	// Fields absent from the body keep their stored values; an explicit
	// null clears the parts-cost override.
	if err := c.ShouldBindJSON(&job); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}
	job.ID = id
	assignPartIDs(&job)
	if err := models.Validate(job); err != nil {
		respondInvalid(c, err)
		return
	}
	if err := h.store.UpdateJobCard(c.Request.Context(), job); err != nil {
		storeFailed(c, h.logger, err, "update job card")
		return
	}
	c.JSON(http.StatusOK, job)
}

// Delete removes a job card.
func (h *JobCardHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	data, ok := loadData(c, h.store, h.logger)
	if !ok {
		return
	}
	if _, found := data.JobCardByID(id); !found {
		respondError(c, http.StatusNotFound, "Job card not found")
		return
	}
	if err := h.store.DeleteJobCard(c.Request.Context(), id); err != nil {
		storeFailed(c, h.logger, err, "delete job card")
		return
	}
	c.Status(http.StatusNoContent)
}

// Print returns the printable document for a job card. A machine or owner
// that no longer exists leaves its fields blank.
func (h *JobCardHandler) Print(c *gin.Context) {
	data, ok := loadData(c, h.store, h.logger)
	if !ok {
		return
	}
	job, found := data.JobCardByID(c.Param("id"))
	if !found {
		respondError(c, http.StatusNotFound, "Job card not found")
		return
	}
	var machine *models.Machine
	if m, ok := data.MachineByID(job.MachineID); ok {
		machine = &m
	}
	var owner *models.Owner
	if o, ok := data.OwnerByID(job.OwnerID); ok {
		owner = &o
	}
	c.JSON(http.StatusOK, jobcard.Render(job, machine, owner))
}
