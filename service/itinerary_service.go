package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"trip-planner/config"
	"trip-planner/models"
)

// ItineraryService runs the full pipeline for one request:
// aggregate, sequence, schedule, assemble.
type ItineraryService struct {
	aggregator *PlaceAggregatorService
	sequencer  *RouteSequencerService
	scheduler  *DaySchedulerService
	assembler  *ItineraryAssemblerService
	newID      func() string
	now        func() time.Time
	logger     *zap.Logger
}

func NewItineraryService(
	aggregator *PlaceAggregatorService,
	sequencer *RouteSequencerService,
	scheduler *DaySchedulerService,
	assembler *ItineraryAssemblerService,
	logger *zap.Logger,
) *ItineraryService {
	return &ItineraryService{
		aggregator: aggregator,
		sequencer:  sequencer,
		scheduler:  scheduler,
		assembler:  assembler,
		newID:      uuid.NewString,
		now:        time.Now,
		logger:     logger.Named("ItineraryService"),
	}
}

// ValidateRequest checks the request before any upstream call is made and
// returns the recognized activity categories.
func ValidateRequest(req models.PlanRequest) ([]models.ActivityCategory, error) {
	if req.TravelDays < config.MIN_TRAVEL_DAYS || req.TravelDays > config.MAX_TRAVEL_DAYS {
		return nil, models.ErrInvalidTravelDays
	}
	if strings.TrimSpace(req.Destination) == "" {
		return nil, models.ErrInvalidDestination
	}
	categories := ParseCategories(req.Activities)
	if len(categories) == 0 {
		return nil, models.ErrNoRecognizedActivity
	}
	return categories, nil
}

// BuildItinerary returns either a complete itinerary or a *models.Failure.
// Upstream failures past validation degrade the result instead of failing it.
func (s *ItineraryService) BuildItinerary(ctx context.Context, req models.PlanRequest) (*models.Itinerary, error) {
	categories, err := ValidateRequest(req)
	if err != nil {
		s.logger.Info("Rejected plan request", zap.Error(err))
		return nil, err
	}

	destination := strings.TrimSpace(req.Destination)
	startLocation := strings.TrimSpace(req.StartLocation)
	if startLocation == "" {
		startLocation = destination
	}

	s.logger.Info("Building itinerary",
		zap.String("destination", destination),
		zap.Int("travel_days", req.TravelDays),
		zap.Int("categories", len(categories)))

	candidates, err := s.aggregator.Aggregate(ctx, destination, categories)
	if err != nil {
		s.logger.Info("No candidate places", zap.String("destination", destination))
		return nil, err
	}

	ordered := s.sequencer.Sequence(ctx, candidates, startLocation)
	days := s.scheduler.Schedule(ordered, req.TravelDays)

	it := s.assembler.Assemble(ctx, AssembleInput{
		Destination:   destination,
		StartLocation: startLocation,
		Activities:    categories,
		TravelDays:    req.TravelDays,
		Companions:    req.Companions,
		Budget:        req.Budget,
		Days:          days,
	})
	it.ID = s.newID()
	it.CreatedAt = s.now().UTC()

	s.logger.Info("Itinerary built",
		zap.String("id", it.ID),
		zap.Int("candidates", len(candidates)),
		zap.Int("scheduled", scheduledCount(it.Days)))
	return it, nil
}

func scheduledCount(days []models.DaySchedule) int {
	n := 0
	for _, d := range days {
		n += d.VisitCount()
	}
	return n
}
