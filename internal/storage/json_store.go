package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"clinic-backend/internal/models"
)

// JSONStore keeps every patient in one flat JSON document keyed by id,
// rewritten wholesale on each mutation. A mutex serializes writers inside
// this process; concurrent processes sharing the file still race, and a
// crash mid-write can corrupt it. That limitation is accepted for this
// backend, it exists for small single-instance deployments only.
type JSONStore struct {
	path string
	mu   sync.Mutex
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) load() (map[string]models.Patient, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]models.Patient{}, nil
		}
		return nil, err
	}

	data := map[string]models.Patient{}
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *JSONStore) save(data map[string]models.Patient) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

func (s *JSONStore) CreatePatient(p *models.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	if _, exists := data[p.ID]; exists {
		return ErrConflict
	}

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	data[p.ID] = *p
	return s.save(data)
}

func (s *JSONStore) GetPatient(id string) (*models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}
	p, exists := data[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *JSONStore) ListPatients() ([]models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}

	patients := make([]models.Patient, 0, len(data))
	for _, p := range data {
		patients = append(patients, p)
	}
	return patients, nil
}

func (s *JSONStore) ListPatientsSorted(field, order string) ([]models.Patient, error) {
	if err := CheckSort(field, order); err != nil {
		return nil, err
	}

	patients, err := s.ListPatients()
	if err != nil {
		return nil, err
	}

	key := func(p models.Patient) float64 {
		switch field {
		case "height":
			return p.Height
		case "weight":
			return p.Weight
		default:
			return p.BMI
		}
	}

	sort.Slice(patients, func(i, j int) bool {
		if order == "desc" {
			return key(patients[i]) > key(patients[j])
		}
		return key(patients[i]) < key(patients[j])
	})
	return patients, nil
}

func (s *JSONStore) UpdatePatient(id string, in models.UpdatePatientInput) (*models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}
	p, exists := data[id]
	if !exists {
		return nil, ErrNotFound
	}

	p.ApplyUpdate(in)
	p.UpdatedAt = time.Now()
	data[id] = p

	if err := s.save(data); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *JSONStore) DeletePatient(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	if _, exists := data[id]; !exists {
		return ErrNotFound
	}

	delete(data, id)
	return s.save(data)
}
