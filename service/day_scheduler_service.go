package services

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"trip-planner/config"
	"trip-planner/models"
)

const clockFormat = "15:04"

// DaySchedulerService splits an ordered place list into per-day visit plans.
type DaySchedulerService struct {
	logger *zap.Logger

	// beforeDay and beforeVisit run ahead of each day and each visit; tests
	// use them to inject faults.
	beforeDay   func(dayIndex int)
	beforeVisit func(models.Place)
}

func NewDaySchedulerService(logger *zap.Logger) *DaySchedulerService {
	return &DaySchedulerService{logger: logger.Named("DayScheduler")}
}

// PlaceholderDays returns days empty schedules with contiguous indices.
func PlaceholderDays(days int) []models.DaySchedule {
	out := make([]models.DaySchedule, 0, days)
	for d := 1; d <= days; d++ {
		out = append(out, models.DaySchedule{DayIndex: d, Slots: models.NewDaySlots()})
	}
	return out
}

// ChunkSize is the number of places offered to each day.
func ChunkSize(total, days int) int {
	chunk := (total + days - 1) / days
	if chunk > config.MAX_VISITS_PER_DAY {
		chunk = config.MAX_VISITS_PER_DAY
	}
	return chunk
}

// Schedule always returns exactly days entries. Places past days*chunk are
// left out of the plan, as are places that would run past midnight.
func (ds *DaySchedulerService) Schedule(places []models.Place, days int) (schedule []models.DaySchedule) {
	defer func() {
		if r := recover(); r != nil {
			ds.logger.Error("Scheduling failed, returning empty days",
				zap.Int("days", days), zap.Any("panic", r))
			schedule = PlaceholderDays(days)
		}
	}()

	if days <= 0 {
		return []models.DaySchedule{}
	}

	total := len(places)
	chunk := ChunkSize(total, days)
	schedule = make([]models.DaySchedule, 0, days)
	for d := 0; d < days; d++ {
		lo := min(d*chunk, total)
		hi := min(lo+chunk, total)
		schedule = append(schedule, ds.scheduleDay(d+1, places[lo:hi]))
	}
	return schedule
}

func (ds *DaySchedulerService) scheduleDay(dayIndex int, places []models.Place) models.DaySchedule {
	if ds.beforeDay != nil {
		ds.beforeDay(dayIndex)
	}

	day := models.DaySchedule{DayIndex: dayIndex, Slots: models.NewDaySlots()}
	clock := time.Date(2000, time.January, 1, config.DAY_START_HOUR, 0, 0, 0, time.UTC)
	midnight := time.Date(2000, time.January, 2, 0, 0, 0, 0, time.UTC)

	count := 0
	for _, p := range places {
		if count >= config.MAX_VISITS_PER_DAY {
			break
		}
		// the visit must end before midnight so HH:MM never wraps
		if !clock.Add(config.VISIT_DURATION).Before(midnight) {
			ds.logger.Debug("Day is full, leaving remaining places out",
				zap.Int("day", dayIndex), zap.String("place", p.Name))
			break
		}
		if !p.Schedulable() {
			ds.logger.Debug("Skipping place missing name, address or coordinates",
				zap.Int("day", dayIndex), zap.String("place", p.Name))
			continue
		}

		visit, next, err := ds.scheduleVisit(p, clock)
		if err != nil {
			ds.logger.Warn("Skipping place that failed to schedule",
				zap.Int("day", dayIndex), zap.String("place", p.Name), zap.Error(err))
			continue
		}
		day.Slots.Add(models.SlotForTime(clock), visit)
		clock = next
		count++
	}
	return day
}

func (ds *DaySchedulerService) scheduleVisit(p models.Place, start time.Time) (visit models.ScheduledVisit, next time.Time, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while scheduling %q: %v", p.Name, r)
		}
	}()

	if ds.beforeVisit != nil {
		ds.beforeVisit(p)
	}

	end := start.Add(config.VISIT_DURATION)
	travel := config.DEFAULT_TRAVEL_TIME
	if p.TravelTimeToNext != nil {
		travel = *p.TravelTimeToNext
	}

	visit = models.ScheduledVisit{
		Name:             p.Name,
		Address:          p.Address,
		Coordinates:      *p.Coordinates,
		StartTime:        start.Format(clockFormat),
		EndTime:          end.Format(clockFormat),
		TravelTimeToNext: travel,
		TravelDistance:   p.TravelDistanceToNext,
	}
	return visit, end.Add(travel), nil
}
