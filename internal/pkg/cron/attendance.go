package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/simpeg-app/simpeg-backend-go/internal/domain/attendance"
)

// AttendanceJobs owns the scheduled side of the attendance ledger: the
// daily sweep that defaults every uncovered active employee to absence.
type AttendanceJobs struct {
	attendanceSvc attendance.AttendanceService
	runHour       int
}

func NewAttendanceJobs(attendanceSvc attendance.AttendanceService, runHour int) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceSvc: attendanceSvc,
		runHour:       runHour,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.Add("force_absence_sweep", j.ForceAbsenceSweep)
}

// ForceAbsenceSweep runs Reconcile for today once the configured local
// hour is reached. The sweep is idempotent, so the hourly tick firing
// more than once inside that hour is harmless.
func (j *AttendanceJobs) ForceAbsenceSweep(ctx context.Context) error {
	now := time.Now()
	if now.Hour() != j.runHour {
		return nil
	}

	slog.Info("Cron: Starting force absence sweep")

	created, err := j.attendanceSvc.Reconcile(ctx, now)
	if err != nil {
		return err
	}

	slog.Info("Cron: Force absence sweep finished", "inserted", len(created))
	return nil
}
