// Package phrases holds the suggestion pool shown to players who
// need inspiration during the phrase-writing phase.
package phrases

import (
	"bufio"
	"context"
	"os"
	"strings"
	"sync"

	"github.com/tmazur/sketchbluff/internal/dependencies/random"
	"github.com/tmazur/sketchbluff/internal/storage"
)

// Service provides random phrase suggestions from a loaded pool
type Service struct {
	storage storage.Storage
	random  random.Random

	mu     sync.RWMutex
	pool   []string
	loaded bool
}

// New creates a new phrases Service
func New(storage storage.Storage, rnd random.Random) *Service {
	return &Service{
		storage: storage,
		random:  rnd,
	}
}

// LoadFromStorage loads the phrase pool from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	pool, err := s.storage.GetPhrasePool(ctx)
	if err != nil {
		return err
	}
	s.loadPool(pool)
	return nil
}

// LoadFromFile loads the phrase pool from a file (one phrase per
// line) and saves it to storage for future use
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var pool []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		phrase := strings.TrimSpace(scanner.Text())
		if phrase != "" {
			pool = append(pool, phrase)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if err := s.storage.SavePhrasePool(ctx, pool); err != nil {
		return err
	}

	s.loadPool(pool)
	return nil
}

// LoadPhrases directly loads a slice of phrases (useful for testing)
func (s *Service) LoadPhrases(pool []string) {
	s.loadPool(pool)
}

func (s *Service) loadPool(pool []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pool = make([]string, len(pool))
	copy(s.pool, pool)
	s.loaded = true
}

// Suggestions returns up to n distinct phrases drawn at random from
// the pool. Returns fewer when the pool is smaller than n, and none
// when nothing is loaded.
func (s *Service) Suggestions(n int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded || n <= 0 {
		return nil
	}
	if n > len(s.pool) {
		n = len(s.pool)
	}

	// Partial Fisher-Yates over a copy: the first n slots end up as
	// a uniform sample without replacement
	sample := make([]string, len(s.pool))
	copy(sample, s.pool)
	for i := 0; i < n; i++ {
		j := i + s.random.Intn(len(sample)-i)
		sample[i], sample[j] = sample[j], sample[i]
	}
	return sample[:n]
}

// IsLoaded returns whether a pool has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Count returns the number of phrases in the pool
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pool)
}
