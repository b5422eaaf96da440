package content

import (
	"strings"
	"sync"
)

// Experience is one portfolio experience entry. Logo is a public media
// path, empty when no image was uploaded.
type Experience struct {
	Title       string
	Company     string
	Date        string
	Description string
	Logo        string
}

// Project is one portfolio project entry. Image is a public media path,
// empty when no image was uploaded.
type Project struct {
	Title       string
	TechStack   []string
	Description string
	Image       string
}

// Store holds the portfolio content in process memory. Both collections
// are prepend-ordered: the most recently added entry is always first, and
// existing entries are never removed or reordered. State lives only as
// long as the process.
//
// Handlers run on concurrent goroutines, so every access goes through the
// mutex.
type Store struct {
	mu          sync.Mutex
	experiences []Experience
	projects    []Project
}

func NewStore() *Store {
	return &Store{}
}

// AddExperience inserts the entry at the front.
func (s *Store) AddExperience(e Experience) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.experiences = append([]Experience{e}, s.experiences...)
}

// AddProject inserts the entry at the front.
func (s *Store) AddProject(p Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append([]Project{p}, s.projects...)
}

// Experiences returns a snapshot copy, newest first.
func (s *Store) Experiences() []Experience {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Experience, len(s.experiences))
	copy(out, s.experiences)
	return out
}

// Projects returns a snapshot copy, newest first.
func (s *Store) Projects() []Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// ParseTechStack splits a comma-separated input into trimmed entries.
// Empty or absent input yields nil. Consecutive commas yield empty-string
// entries; they are kept as submitted, not filtered.
func ParseTechStack(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}
