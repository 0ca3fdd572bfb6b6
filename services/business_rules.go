package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Naitik2408/pizza-sub001/entity"
	"github.com/Naitik2408/pizza-sub001/repository"
)

// BusinessRulesService caches the settings row as a value object, replaced
// wholesale on every refresh. Consumers always read a copy.
type BusinessRulesService struct {
	Repo *repository.SettingsRepository

	mu      sync.RWMutex
	current BusinessRules
}

func NewBusinessRulesService(repo *repository.SettingsRepository) *BusinessRulesService {
	s := &BusinessRulesService{Repo: repo}
	if err := s.Refresh(); err != nil {
		log.Println("business rules: initial refresh failed:", err)
	}
	return s
}

func (s *BusinessRulesService) Refresh() error {
	row, err := s.Repo.Get()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.current = RulesFromSettings(row)
	s.mu.Unlock()
	return nil
}

func (s *BusinessRulesService) Current() BusinessRules {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// AutoRefresh re-reads the settings row on a ticker until ctx is cancelled.
func (s *BusinessRulesService) AutoRefresh(ctx context.Context, every time.Duration) {
	go func() {
		t := time.NewTicker(every)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if err := s.Refresh(); err != nil {
					log.Println("business rules: refresh failed:", err)
				}
			}
		}
	}()
}

// Save replaces the settings row and makes the new rules visible immediately.
func (s *BusinessRulesService) Save(in *entity.BusinessSettings) error {
	if err := s.Repo.Save(in); err != nil {
		return err
	}
	return s.Refresh()
}
