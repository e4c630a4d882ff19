package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/apex-maintenance/internal/models"
)

// DefaultStoreKey is the fixed key the whole document is stored under.
const DefaultStoreKey = "heavy_machinery_db_v2"

// Store is the record store. Every operation reads the whole document,
// applies one change and writes the whole document back.
type Store struct {
	blobs  BlobStore
	key    string
	logger *log.Logger

	// mu serializes read-modify-write cycles within this process.
	mu sync.Mutex
}

// NewStore creates a record store over blobs. An empty key selects
// DefaultStoreKey; a nil logger selects the logrus standard logger.
func NewStore(blobs BlobStore, key string, logger *log.Logger) *Store {
	if key == "" {
		key = DefaultStoreKey
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Store{blobs: blobs, key: key, logger: logger}
}

// Get returns the persisted document, or the seed dataset when nothing is
// stored yet, the stored value does not parse, or the backend read fails.
func (s *Store) Get(ctx context.Context) (models.AppData, error) {
	data, err := s.load(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("key", s.key).Warn("Failed to read record store, using seed data")
		return models.SeedData(), nil
	}
	return data, nil
}

// load is Get without the fallback for backend failures. A missing or
// unparseable document still yields the seed dataset.
func (s *Store) load(ctx context.Context) (models.AppData, error) {
	raw, err := s.blobs.Load(ctx, s.key)
	if errors.Is(err, ErrBlobNotFound) {
		return models.SeedData(), nil
	}
	if err != nil {
		return models.AppData{}, fmt.Errorf("read record store: %w", err)
	}
	var data models.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		s.logger.WithError(err).WithField("key", s.key).Warn("Stored document is unparseable, using seed data")
		return models.SeedData(), nil
	}
	data.Normalize()
	return data, nil
}

// Save overwrites the persisted document wholesale.
func (s *Store) Save(ctx context.Context, data models.AppData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, data)
}

func (s *Store) save(ctx context.Context, data models.AppData) error {
	data.Normalize()
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode record store: %w", err)
	}
	if err := s.blobs.Store(ctx, s.key, raw); err != nil {
		s.logger.WithError(err).WithField("key", s.key).Error("Failed to write record store")
		return fmt.Errorf("write record store: %w", err)
	}
	return nil
}

// mutate runs one read-modify-write cycle. A failed read aborts the cycle
// so the stored document is never replaced by the seed dataset.
func (s *Store) mutate(ctx context.Context, apply func(*models.AppData)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("key", s.key).Error("Failed to read record store")
		return err
	}
	apply(&data)
	return s.save(ctx, data)
}

// ratchetMachineHours raises the referenced machine's hours when the job
// reports a strictly higher reading. A dangling machineId is ignored.
func ratchetMachineHours(data *models.AppData, job models.JobCard) {
	for i := range data.Machines {
		if data.Machines[i].ID == job.MachineID {
			data.Machines[i].RatchetHours(job.WorkingHoursOnArrival)
			return
		}
	}
}

// AddJobCard inserts the job card at the front and ratchets machine hours.
func (s *Store) AddJobCard(ctx context.Context, job models.JobCard) error {
	return s.mutate(ctx, func(d *models.AppData) {
		d.JobCards = append([]models.JobCard{job}, d.JobCards...)
		ratchetMachineHours(d, job)
	})
}

// UpdateJobCard replaces the job card with the same id and ratchets machine
// hours. An unknown id replaces nothing, but the ratchet still applies.
func (s *Store) UpdateJobCard(ctx context.Context, job models.JobCard) error {
	return s.mutate(ctx, func(d *models.AppData) {
		for i := range d.JobCards {
			if d.JobCards[i].ID == job.ID {
				d.JobCards[i] = job
			}
		}
		ratchetMachineHours(d, job)
	})
}

// DeleteJobCard removes the job card with id.
func (s *Store) DeleteJobCard(ctx context.Context, id string) error {
	return s.mutate(ctx, func(d *models.AppData) {
		kept := make([]models.JobCard, 0, len(d.JobCards))
		for _, j := range d.JobCards {
			if j.ID != id {
				kept = append(kept, j)
			}
		}
		d.JobCards = kept
	})
}

// AddOwner appends an owner.
func (s *Store) AddOwner(ctx context.Context, owner models.Owner) error {
	return s.mutate(ctx, func(d *models.AppData) {
		d.Owners = append(d.Owners, owner)
	})
}

// UpdateOwner replaces the owner with the same id.
func (s *Store) UpdateOwner(ctx context.Context, owner models.Owner) error {
	return s.mutate(ctx, func(d *models.AppData) {
		for i := range d.Owners {
			if d.Owners[i].ID == owner.ID {
				d.Owners[i] = owner
			}
		}
	})
}

// DeleteOwner removes the owner and every machine it owns. Job cards that
// reference those machines are left in place.
func (s *Store) DeleteOwner(ctx context.Context, id string) error {
	return s.mutate(ctx, func(d *models.AppData) {
		owners := make([]models.Owner, 0, len(d.Owners))
		for _, o := range d.Owners {
			if o.ID != id {
				owners = append(owners, o)
			}
		}
		machines := make([]models.Machine, 0, len(d.Machines))
		for _, m := range d.Machines {
			if m.OwnerID != id {
				machines = append(machines, m)
			}
		}
		d.Owners, d.Machines = owners, machines
	})
}

// AddMachine appends a machine.
func (s *Store) AddMachine(ctx context.Context, machine models.Machine) error {
	return s.mutate(ctx, func(d *models.AppData) {
		d.Machines = append(d.Machines, machine)
	})
}

// UpdateMachine replaces the machine with the same id.
func (s *Store) UpdateMachine(ctx context.Context, machine models.Machine) error {
	return s.mutate(ctx, func(d *models.AppData) {
		for i := range d.Machines {
			if d.Machines[i].ID == machine.ID {
				d.Machines[i] = machine
			}
		}
	})
}

// DeleteMachine removes the machine with id. Job cards are not touched.
func (s *Store) DeleteMachine(ctx context.Context, id string) error {
	return s.mutate(ctx, func(d *models.AppData) {
		kept := make([]models.Machine, 0, len(d.Machines))
		for _, m := range d.Machines {
			if m.ID != id {
				kept = append(kept, m)
			}
		}
		d.Machines = kept
	})
}

// MarkAllSynced sets every job card's status to Synced.
func (s *Store) MarkAllSynced(ctx context.Context) (int, error) {
	var n int
	err := s.mutate(ctx, func(d *models.AppData) {
		for i := range d.JobCards {
			d.JobCards[i].Status = models.StatusSynced
		}
		n = len(d.JobCards)
	})
	return n, err
}
