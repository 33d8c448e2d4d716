package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"trip-planner/models"
)

// RouteMapPoints flattens an itinerary into labelled geo points, one series per day.
func RouteMapPoints(it *models.Itinerary) map[string][]opts.GeoData {
	series := make(map[string][]opts.GeoData, len(it.Days))
	for _, day := range it.Days {
		name := fmt.Sprintf("Day %d", day.DayIndex)
		points := []opts.GeoData{}
		for i, v := range day.Visits() {
			points = append(points, opts.GeoData{
				Name:  fmt.Sprintf("%d. %s (%s)", i+1, v.Name, v.StartTime),
				Value: []float64{v.Coordinates.Lng, v.Coordinates.Lat},
			})
		}
		series[name] = points
	}
	return series
}

// RenderRouteMap writes an HTML page plotting every scheduled visit of the itinerary.
func RenderRouteMap(w io.Writer, it *models.Itinerary) error {
	subtitle := fmt.Sprintf("%d day(s)", it.TravelDays)
	if b, ok := it.Bounds(); ok {
		subtitle += fmt.Sprintf(", centered on %.4f,%.4f", b.Lat, b.Lng)
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Itinerary Route Map",
			Width:     "900px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    it.Destination,
			Subtitle: subtitle,
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	series := RouteMapPoints(it)
	// keep series in day order, map iteration is random
	for _, day := range it.Days {
		name := fmt.Sprintf("Day %d", day.DayIndex)
		geo.AddSeries(name, types.ChartScatter, series[name],
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Formatter: "{b}",
			}),
		)
	}

	if err := geo.Render(w); err != nil {
		return fmt.Errorf("failed to render route map: %w", err)
	}
	return nil
}
