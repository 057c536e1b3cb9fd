package stubserver

import (
	"sort"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Record types mirror what the real backend persists. The store keeps the
// original (legacy) field-naming quirks at the response-building layer, not
// here.

type developerRecord struct {
	ID                  int64
	Name                string
	Email               string
	Role                string
	GraduationDate      string
	IndustryExperience  int
	EmploymentStartDate string
	IsAvailable         bool
	CreatedAt           string
	LastUpdated         string
	SkillIDs            []int64
}

type skillAreaRecord struct {
	ID        int64
	Name      string
	CreatedAt string
}

type skillRecord struct {
	ID     int64
	Name   string
	AreaID int64
}

type projectRecord struct {
	ID               int64
	DeveloperID      int64
	Name             string
	Description      string
	Origin           string
	TechStack        []string
	CategoryIDs      []int64
	SkillIDs         []int64
	RepoLink         string
	DocLink          string
	PresentationLink string
	LiveLink         string
	CreatedAt        string
}

type categoryRecord struct {
	ID          int64
	Name        string
	Description string
	UseCases    []string
	SkillIDs    []int64
}

// store is the in-memory state behind the contract stub. A single mutex is
// plenty: the stub exists for local development and tests, not load.
type store struct {
	mu sync.Mutex

	seq        int64
	adminEmail string
	adminHash  []byte
	developers map[int64]*developerRecord
	skillAreas map[int64]*skillAreaRecord
	skills     map[int64]*skillRecord
	projects   map[int64]*projectRecord
	categories map[int64]*categoryRecord
}

func newStore() *store {
	return &store{
		developers: make(map[int64]*developerRecord),
		skillAreas: make(map[int64]*skillAreaRecord),
		skills:     make(map[int64]*skillRecord),
		projects:   make(map[int64]*projectRecord),
		categories: make(map[int64]*categoryRecord),
	}
}

func (s *store) nextID() int64 {
	s.seq++
	return s.seq
}

func (s *store) setAdmin(email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.adminEmail = email
	s.adminHash = hash
	return nil
}

func (s *store) checkAdmin(email, password string) bool {
	if email != s.adminEmail {
		return false
	}
	return bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)) == nil
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// sortedIDs gives deterministic list order: insertion order equals id order
// since ids come from one sequence.
func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// paginate slices ids down to the requested page.
func paginate(ids []int64, page, pageSize int) []int64 {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(ids) {
		return nil
	}
	end := start + pageSize
	if end > len(ids) {
		end = len(ids)
	}
	return ids[start:end]
}
