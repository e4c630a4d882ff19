package report

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/apex-maintenance/internal/models"
)

// ErrJobCardNotFound is returned when a parts-cost edit targets an unknown job card.
var ErrJobCardNotFound = errors.New("job card not found")

// RecordStore is the part of the record store the report reads and edits.
type RecordStore interface {
	Get(ctx context.Context) (models.AppData, error)
	UpdateJobCard(ctx context.Context, job models.JobCard) error
}

// Service builds reports from the record store and writes row edits back.
type Service struct {
	store    RecordStore
	engineer string
	logger   *log.Logger
}

// NewService creates a report service. engineer is printed on every report.
func NewService(store RecordStore, engineer string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Service{store: store, engineer: engineer, logger: logger}
}

// Monthly builds the report for the period from the current store contents.
func (s *Service) Monthly(ctx context.Context, period Period) (Report, error) {
	data, err := s.store.Get(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("read record store: %w", err)
	}
	return Build(data.JobCards, period, s.engineer), nil
}

// UpdatePartsCost sets the spare-parts cost override on a job card, persists
// it, and returns the report recomputed from the written state.
func (s *Service) UpdatePartsCost(ctx context.Context, jobID string, partsCost float64, period Period) (Report, error) {
	data, err := s.store.Get(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("read record store: %w", err)
	}
	job, ok := data.JobCardByID(jobID)
	if !ok {
		return Report{}, ErrJobCardNotFound
	}
	job.SparePartsCostOverride = models.Float(partsCost)
	if err := s.store.UpdateJobCard(ctx, job); err != nil {
		return Report{}, fmt.Errorf("update job card %s: %w", jobID, err)
	}
	s.logger.WithFields(log.Fields{
		"job_card_id": jobID,
		"job_card_no": job.JobCardNo,
		"parts_cost":  partsCost,
	}).Info("Spare parts cost override updated")
	return s.Monthly(ctx, period)
}

// Dashboard computes statistics over the whole store.
func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	data, err := s.store.Get(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("read record store: %w", err)
	}
	return BuildDashboard(data), nil
}
