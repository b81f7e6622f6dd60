package student

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/marksheet/core"
)

var (
	// errors
	ErrIDExists = errors.New("a student with this ID already exists")
)

// Direction is the order applied by SortByName.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection accepts "asc" or "desc" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(core.CleanString(s, true /* lower */)); d {
	case Ascending, Descending:
		return d, nil
	default:
		return "", core.NewValidationError(nil, core.FieldError{Field: "direction", Error: "must be one of asc or desc"})
	}
}

type (
	// Repository loads and saves the whole list of students at once.
	// Load returns a *core.NotFoundError when there is nothing to load yet.
	Repository interface {
		Load() ([]Student, error)
		Save(students []Student) error
	}

	// Service is the record store: every operation loads the list, applies its change and saves it back.
	Service struct {
		repo Repository
		log  core.Logger
	}

	// Summary holds the aggregate statistics of the store.
	Summary struct {
		Count   int            `json:"count" yaml:"count"`
		Valid   int            `json:"valid" yaml:"valid"`
		Average float64        `json:"average" yaml:"average"`
		Grades  map[string]int `json:"grades" yaml:"grades"`
		Highest *Student       `json:"highest,omitempty" yaml:"highest,omitempty"`
		Lowest  *Student       `json:"lowest,omitempty" yaml:"lowest,omitempty"`
	}
)

func NewService(repo Repository, logger core.Logger) *Service {
	return &Service{repo: repo, log: logger}
}

// load treats a missing backing file as an empty store.
func (svc *Service) load() ([]Student, error) {
	students, err := svc.repo.Load()
	if err != nil {
		if core.IsNotFound(err) {
			svc.log.Warn("no student data found, starting empty", "error", err)
			return nil, nil
		}
		return nil, err
	}
	for _, s := range students {
		if !s.Valid() {
			svc.log.Warn("skipping malformed student record", "id", s.ID, "fields", strings.Join(s.Raw, ","))
		}
	}
	return students, nil
}

func (svc *Service) save(students []Student) error {
	if err := svc.repo.Save(students); err != nil {
		svc.log.Error("saving students failed", "error", err)
		return err
	}
	return nil
}

// checkUniqueness fails if another record than the one at `exclIdx` already uses `id`.
func checkUniqueness(students []Student, id string, exclIdx int) error {
	for i, s := range students {
		if i != exclIdx && s.ID == id {
			return core.NewValidationError(ErrIDExists, core.FieldError{Field: "id", Error: ErrIDExists.Error()})
		}
	}
	return nil
}

func indexOf(students []Student, id string) int {
	for i, s := range students {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Reset overwrites the store with the seed dataset.
func (svc *Service) Reset() ([]Student, error) {
	students := Seed()
	if err := svc.save(students); err != nil {
		return nil, err
	}
	svc.log.Info("student records reset", "count", len(students))
	return students, nil
}

// List returns every record in file order, including malformed ones.
func (svc *Service) List() ([]Student, error) {
	return svc.load()
}

func (svc *Service) Add(ns NewStudent) (Student, error) {
	s, err := ns.Validate()
	if err != nil {
		return Student{}, err
	}
	students, err := svc.load()
	if err != nil {
		return Student{}, err
	}
	if err := checkUniqueness(students, s.ID, -1); err != nil {
		return Student{}, err
	}
	if err := svc.save(append(students, s)); err != nil {
		return Student{}, err
	}
	svc.log.Info("student added", "id", s.ID)
	return s, nil
}

// Update replaces the record identified by targetID, keeping its position.
func (svc *Service) Update(targetID string, ns NewStudent) (Student, error) {
	s, err := ns.Validate()
	if err != nil {
		return Student{}, err
	}
	students, err := svc.load()
	if err != nil {
		return Student{}, err
	}
	targetID = core.CleanString(targetID)
	idx := indexOf(students, targetID)
	if idx < 0 {
		return Student{}, core.NewNotFoundError("student", targetID)
	}
	if err := checkUniqueness(students, s.ID, idx); err != nil {
		return Student{}, err
	}
	students[idx] = s
	if err := svc.save(students); err != nil {
		return Student{}, err
	}
	svc.log.Info("student updated", "target", targetID, "id", s.ID)
	return s, nil
}

func (svc *Service) Delete(id string) error {
	students, err := svc.load()
	if err != nil {
		return err
	}
	id = core.CleanString(id)
	kept := make([]Student, 0, len(students))
	for _, s := range students {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(students) {
		return core.NewNotFoundError("student", id)
	}
	if err := svc.save(kept); err != nil {
		return err
	}
	svc.log.Info("student deleted", "id", id)
	return nil
}

// SortByName reorders the records by case-insensitive name. Equal names keep their file order.
func (svc *Service) SortByName(dir Direction) ([]Student, error) {
	dir, err := ParseDirection(string(dir))
	if err != nil {
		return nil, err
	}
	students, err := svc.load()
	if err != nil {
		return nil, err
	}
	SortByName(students, dir)
	if err := svc.save(students); err != nil {
		return nil, err
	}
	svc.log.Info("students sorted", "direction", string(dir))
	return students, nil
}

// SortByName sorts students in place; it does not persist anything.
func SortByName(students []Student, dir Direction) {
	sort.SliceStable(students, func(i, j int) bool {
		a, b := strings.ToLower(students[i].Name), strings.ToLower(students[j].Name)
		if dir == Descending {
			return a > b
		}
		return a < b
	})
}

func (svc *Service) FindByID(id string) (Student, error) {
	students, err := svc.load()
	if err != nil {
		return Student{}, err
	}
	id = core.CleanString(id)
	if idx := indexOf(students, id); idx >= 0 {
		return students[idx], nil
	}
	return Student{}, core.NewNotFoundError("student", id)
}

// Highest returns the valid record with the best percentage; the first one in file order wins ties.
func (svc *Service) Highest() (Student, error) {
	students, err := svc.load()
	if err != nil {
		return Student{}, err
	}
	return pick(students, func(p, best float64) bool { return p > best })
}

// Lowest returns the valid record with the worst percentage; the first one in file order wins ties.
func (svc *Service) Lowest() (Student, error) {
	students, err := svc.load()
	if err != nil {
		return Student{}, err
	}
	return pick(students, func(p, best float64) bool { return p < best })
}

func pick(students []Student, better func(p, best float64) bool) (Student, error) {
	var (
		found bool
		best  Student
	)
	for _, s := range students {
		if !s.Valid() {
			continue
		}
		if !found || better(s.Percent(), best.Percent()) {
			best, found = s, true
		}
	}
	if !found {
		return Student{}, core.ErrEmptyStore
	}
	return best, nil
}

// Average is the mean percentage of the valid records, rounded to 2 decimal places; 0 when there are none.
func (svc *Service) Average() (float64, error) {
	students, err := svc.load()
	if err != nil {
		return 0, err
	}
	return Average(students), nil
}

func Average(students []Student) float64 {
	var (
		sum float64
		n   int
	)
	for _, s := range students {
		if s.Valid() {
			sum += s.Percent()
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return core.Round2(sum / float64(n))
}

// Summarize computes every aggregate from a single load.
func (svc *Service) Summarize() (Summary, error) {
	students, err := svc.load()
	if err != nil {
		return Summary{}, err
	}
	sum := Summary{
		Count:   len(students),
		Average: Average(students),
		Grades:  make(map[string]int, len(AllGrades)),
	}
	for _, g := range AllGrades {
		sum.Grades[g] = 0
	}
	for _, s := range students {
		if s.Valid() {
			sum.Valid++
			sum.Grades[s.Grade()]++
		}
	}
	if hi, err := pick(students, func(p, best float64) bool { return p > best }); err == nil {
		sum.Highest = &hi
	}
	if lo, err := pick(students, func(p, best float64) bool { return p < best }); err == nil {
		sum.Lowest = &lo
	}
	return sum, nil
}
