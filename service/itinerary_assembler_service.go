package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"trip-planner/api/narrative"
	"trip-planner/api/openweather"
	"trip-planner/config"
	"trip-planner/models"
)

const dateFormat = "2006-01-02"

// AssembleInput is everything the assembler needs besides its collaborators.
type AssembleInput struct {
	Destination   string
	StartLocation string
	Activities    []models.ActivityCategory
	TravelDays    int
	Companions    string
	Budget        string
	Days          []models.DaySchedule
}

// ItineraryAssemblerService attaches the weather outlook and the narrative
// summary to a finished schedule.
type ItineraryAssemblerService struct {
	weather   openweather.WeatherAPI
	narrative narrative.NarrativeAPI
	timeout   time.Duration
	now       func() time.Time
	logger    *zap.Logger
}

// NewItineraryAssemblerService builds the assembler. A nil narrative client
// turns narrative generation off and leaves Narrative empty.
func NewItineraryAssemblerService(
	weather openweather.WeatherAPI,
	narrativeAPI narrative.NarrativeAPI,
	timeout time.Duration,
	logger *zap.Logger,
) *ItineraryAssemblerService {
	return &ItineraryAssemblerService{
		weather:   weather,
		narrative: narrativeAPI,
		timeout:   timeout,
		now:       time.Now,
		logger:    logger.Named("ItineraryAssembler"),
	}
}

// SetClock replaces the source of "today" for the weather window.
func (a *ItineraryAssemblerService) SetClock(now func() time.Time) {
	a.now = now
}

func (a *ItineraryAssemblerService) Assemble(ctx context.Context, in AssembleInput) *models.Itinerary {
	it := &models.Itinerary{
		Destination:   in.Destination,
		StartLocation: in.StartLocation,
		TravelDays:    in.TravelDays,
		Activities:    in.Activities,
		Companions:    in.Companions,
		Budget:        in.Budget,
		Days:          in.Days,
	}

	weather := a.forecast(ctx, in.Destination, in.TravelDays)
	if !weather.OK() {
		a.logger.Warn("Weather unavailable, continuing without forecast",
			zap.String("destination", in.Destination),
			zap.String("reason", string(weather.Reason)),
			zap.Error(weather.Err))
	}
	it.Weather = weather.ValueOr([]models.WeatherForecast{})

	if a.narrative == nil {
		return it
	}
	summary := a.summarize(ctx, models.NarrativePrompt{
		Destination:    in.Destination,
		Schedule:       RenderSchedule(in.Days),
		Companions:     in.Companions,
		Budget:         in.Budget,
		WeatherSummary: RenderWeather(it.Weather),
	})
	if !summary.OK() {
		a.logger.Warn("Narrative unavailable, using placeholder",
			zap.String("reason", string(summary.Reason)),
			zap.Error(summary.Err))
	}
	it.Narrative = summary.ValueOr(config.NARRATIVE_PLACEHOLDER)
	return it
}

func (a *ItineraryAssemblerService) forecast(ctx context.Context, destination string, days int) models.Result[[]models.WeatherForecast] {
	buckets, err := withTimeout(ctx, a.timeout, func(ctx context.Context) ([]models.ForecastBucket, error) {
		return a.weather.GetForecast(ctx, destination, days)
	})
	if err != nil {
		return models.Degraded[[]models.WeatherForecast](models.ReasonWeatherFailed, err)
	}
	return models.Ok(AggregateWeather(buckets, a.now(), days))
}

func (a *ItineraryAssemblerService) summarize(ctx context.Context, prompt models.NarrativePrompt) models.Result[string] {
	text, err := withTimeout(ctx, a.timeout, func(ctx context.Context) (string, error) {
		return a.narrative.Generate(ctx, prompt)
	})
	if err != nil {
		return models.Degraded[string](models.ReasonNarrativeFailed, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Degraded[string](models.ReasonNarrativeFailed, errors.New("empty narrative"))
	}
	return models.Ok(text)
}

// AggregateWeather groups buckets by UTC calendar date for the days dates
// starting at today. Dates with no bucket are omitted, so the result may be
// shorter than days.
func AggregateWeather(buckets []models.ForecastBucket, today time.Time, days int) []models.WeatherForecast {
	type dayAcc struct {
		sum   float64
		n     int
		first models.ForecastBucket
	}
	byDate := make(map[string]*dayAcc)
	for _, b := range buckets {
		key := b.Timestamp.UTC().Format(dateFormat)
		acc, ok := byDate[key]
		if !ok {
			acc = &dayAcc{first: b}
			byDate[key] = acc
		}
		acc.sum += b.Temp
		acc.n++
	}

	start := today.UTC()
	out := make([]models.WeatherForecast, 0, days)
	for i := 0; i < days; i++ {
		key := start.AddDate(0, 0, i).Format(dateFormat)
		acc, ok := byDate[key]
		if !ok {
			continue
		}
		out = append(out, models.WeatherForecast{
			Date:        key,
			AvgTemp:     math.Round(acc.sum/float64(acc.n)*10) / 10,
			Description: acc.first.Description,
			Icon:        acc.first.Icon,
		})
	}
	return out
}

// RenderSchedule writes the schedule as plain text for the narrative prompt.
func RenderSchedule(days []models.DaySchedule) string {
	var b strings.Builder
	for _, d := range days {
		fmt.Fprintf(&b, "Day %d:\n", d.DayIndex)
		for _, slot := range models.Slots {
			visits := d.Slots.Get(slot)
			if len(visits) == 0 {
				fmt.Fprintf(&b, "  %s: free\n", slot)
				continue
			}
			fmt.Fprintf(&b, "  %s:\n", slot)
			for _, v := range visits {
				fmt.Fprintf(&b, "    %s-%s %s (%s)\n", v.StartTime, v.EndTime, v.Name, v.Address)
			}
		}
	}
	return b.String()
}

func RenderWeather(forecast []models.WeatherForecast) string {
	if len(forecast) == 0 {
		return ""
	}
	lines := make([]string, 0, len(forecast))
	for _, f := range forecast {
		lines = append(lines, fmt.Sprintf("%s: %.1f°C, %s", f.Date, f.AvgTemp, f.Description))
	}
	return strings.Join(lines, "\n")
}
