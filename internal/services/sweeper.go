package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"designdesk/internal/domain"
)

// SweeperService closes out appointments whose scheduled time has passed.
// It is driven by the cron scheduler in cmd/server.
type SweeperService struct {
	apptRepo domain.AppointmentRepository
	logger   *slog.Logger
	now      func() time.Time
}

func NewSweeperService(apptRepo domain.AppointmentRepository, logger *slog.Logger) *SweeperService {
	return &SweeperService{
		apptRepo: apptRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// CompletePastAppointments marks scheduled, confirmed, and in-progress
// appointments whose end time has passed as completed. Cancelled and already
// completed appointments are untouched.
func (s *SweeperService) CompletePastAppointments(ctx context.Context) error {
	ids, err := s.apptRepo.ListActiveEndedBefore(ctx, s.now())
	if err != nil {
		return fmt.Errorf("list ended appointments: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}
	if err := s.apptRepo.SetStatuses(ctx, ids, domain.StatusCompleted); err != nil {
		return fmt.Errorf("mark appointments completed: %w", err)
	}
	s.logger.Info("completion sweep", "completed", len(ids))
	return nil
}
