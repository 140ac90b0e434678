package services

import (
	"time"

	"cafe_manager/internal/localtime"
	"cafe_manager/internal/models"
	"cafe_manager/internal/repository"
)

// History filters. "today" is aligned to local civil midnight; the week
// and month windows roll back from the current instant.
const (
	FilterAll       = "all"
	FilterToday     = "today"
	FilterLastWeek  = "last_week"
	FilterLastMonth = "last_month"
)

type HistoryService interface {
	Query(filter string) ([]models.History, float64, error)
}

type historyService struct {
	historyRepo repository.HistoryRepository
	now         func() time.Time
}

func NewHistoryService(historyRepo repository.HistoryRepository) HistoryService {
	return &historyService{historyRepo: historyRepo, now: localtime.Now}
}

// Query returns archived records within the filter's window, newest first,
// plus the sum of their amounts. An unrecognized filter behaves like "all".
func (s *historyService) Query(filter string) ([]models.History, float64, error) {
	now := s.now()

	var (
		records []models.History
		err     error
	)
	switch filter {
	case FilterToday:
		records, err = s.historyRepo.GetSince(localtime.StartOfDay(now))
	case FilterLastWeek:
		records, err = s.historyRepo.GetSince(now.Add(-7 * 24 * time.Hour))
	case FilterLastMonth:
		records, err = s.historyRepo.GetSince(now.Add(-30 * 24 * time.Hour))
	default:
		records, err = s.historyRepo.GetAll()
	}
	if err != nil {
		return nil, 0, err
	}

	total := 0.0
	for _, record := range records {
		total += record.Amount
	}
	return records, total, nil
}
