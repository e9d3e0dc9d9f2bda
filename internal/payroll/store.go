package payroll

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/naijatax/paye-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// Store persists employee rosters keyed by owner
type Store interface {
	List(ctx context.Context, ownerID string) ([]domain.Employee, error)
	Save(ctx context.Context, ownerID string, employees []domain.Employee) error
	Delete(ctx context.Context, ownerID, employeeID string) error
}

// MemoryStore keeps rosters in process memory
type MemoryStore struct {
	mu      sync.RWMutex
	rosters map[string][]domain.Employee
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rosters: make(map[string][]domain.Employee)}
}

func (s *MemoryStore) List(ctx context.Context, ownerID string) ([]domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.rosters[ownerID]), nil
}

// Save appends employees to the owner's roster, replacing entries with a matching ID
func (s *MemoryStore) Save(ctx context.Context, ownerID string, employees []domain.Employee) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rosters[ownerID] = upsert(s.rosters[ownerID], employees)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, ownerID, employeeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	remaining, ok := remove(s.rosters[ownerID], employeeID)
	if !ok {
		return fmt.Errorf("delete %s: %w", employeeID, ErrEmployeeNotFound)
	}
	s.rosters[ownerID] = remaining
	return nil
}

// FileStore keeps one YAML roster file per owner under a directory
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore creates a store rooted at dir, creating the directory if needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create roster directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// rosterNamespace seeds the name-based UUIDs that become roster file names
var rosterNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("paye-calculator/rosters"))

// path maps an owner to its roster file. Owner IDs are opaque and may contain
// separators, so the file name is a UUID derived from the whole ID.
func (s *FileStore) path(ownerID string) string {
	return filepath.Join(s.dir, uuid.NewSHA1(rosterNamespace, []byte(ownerID)).String()+".yaml")
}

func (s *FileStore) List(ctx context.Context, ownerID string) ([]domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(ownerID)
}

func (s *FileStore) Save(ctx context.Context, ownerID string, employees []domain.Employee) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	current, err := s.read(ownerID)
	if err != nil {
		return err
	}
	return s.write(ownerID, upsert(current, employees))
}

func (s *FileStore) Delete(ctx context.Context, ownerID, employeeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	current, err := s.read(ownerID)
	if err != nil {
		return err
	}
	remaining, ok := remove(current, employeeID)
	if !ok {
		return fmt.Errorf("delete %s: %w", employeeID, ErrEmployeeNotFound)
	}
	return s.write(ownerID, remaining)
}

func (s *FileStore) read(ownerID string) ([]domain.Employee, error) {
	data, err := os.ReadFile(s.path(ownerID))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read roster for %s: %w", ownerID, err)
	}
	var roster domain.Roster
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("failed to parse roster for %s: %w", ownerID, err)
	}
	return roster.Employees, nil
}

func (s *FileStore) write(ownerID string, employees []domain.Employee) error {
	data, err := yaml.Marshal(domain.Roster{Employees: employees})
	if err != nil {
		return fmt.Errorf("failed to encode roster for %s: %w", ownerID, err)
	}
	if err := os.WriteFile(s.path(ownerID), data, 0o644); err != nil {
		return fmt.Errorf("failed to write roster for %s: %w", ownerID, err)
	}
	return nil
}

func upsert(current, incoming []domain.Employee) []domain.Employee {
	out := slices.Clone(current)
	for _, e := range incoming {
		idx := slices.IndexFunc(out, func(x domain.Employee) bool { return x.ID == e.ID })
		if idx >= 0 {
			out[idx] = e
			continue
		}
		out = append(out, e)
	}
	return out
}

func remove(current []domain.Employee, employeeID string) ([]domain.Employee, bool) {
	idx := slices.IndexFunc(current, func(x domain.Employee) bool { return x.ID == employeeID })
	if idx < 0 {
		return current, false
	}
	return slices.Delete(slices.Clone(current), idx, idx+1), true
}
