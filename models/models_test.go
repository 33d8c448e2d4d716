package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActivityCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want ActivityCategory
		ok   bool
	}{
		{"food", ActivityFood, true},
		{" City ", ActivityCity, true},
		{"BEACHES", ActivityBeaches, true},
		{"hiking", ActivityHiking, true},
		{"nightlife", "", false},
		{"", "", false},
	}
	for _, test := range tests {
		got, ok := ParseActivityCategory(test.raw)
		assert.Equal(t, test.ok, ok, "raw %q", test.raw)
		if test.ok {
			assert.Equal(t, test.want, got)
		}
	}
}

func TestSlotForTime(t *testing.T) {
	at := func(h, m int) time.Time { return time.Date(2026, 1, 1, h, m, 0, 0, time.UTC) }

	assert.Equal(t, SlotMorning, SlotForTime(at(9, 0)))
	assert.Equal(t, SlotMorning, SlotForTime(at(11, 59)))
	assert.Equal(t, SlotAfternoon, SlotForTime(at(12, 0)))
	assert.Equal(t, SlotAfternoon, SlotForTime(at(16, 59)))
	assert.Equal(t, SlotEvening, SlotForTime(at(17, 0)))
	assert.Equal(t, SlotEvening, SlotForTime(at(23, 30)))
}

func TestDaySchedule_EmptySlotsMarshalAsArrays(t *testing.T) {
	day := DaySchedule{DayIndex: 1, Slots: NewDaySlots()}

	b, err := json.Marshal(day)
	require.NoError(t, err)
	assert.JSONEq(t, `{"day_index":1,"slots":{"Morning":[],"Afternoon":[],"Evening":[]}}`, string(b))
}

func TestDaySchedule_VisitsInArrivalOrder(t *testing.T) {
	slots := NewDaySlots()
	slots.Add(SlotMorning, ScheduledVisit{Name: "a"})
	slots.Add(SlotAfternoon, ScheduledVisit{Name: "b"})
	slots.Add(SlotEvening, ScheduledVisit{Name: "c"})
	day := DaySchedule{DayIndex: 1, Slots: slots}

	assert.Equal(t, 3, day.VisitCount())
	names := []string{}
	for _, v := range day.Visits() {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestResult(t *testing.T) {
	ok := Ok(42)
	assert.True(t, ok.OK())
	assert.Equal(t, 42, ok.ValueOr(7))

	bad := Degraded[int](ReasonGeocodeFailed, errors.New("timeout"))
	assert.False(t, bad.OK())
	assert.Equal(t, 7, bad.ValueOr(7))
	assert.Equal(t, "geocode_failed: timeout", bad.String())
}

func TestFailure_Is(t *testing.T) {
	wrapped := fmt.Errorf("build: %w", ErrNoCandidatePlaces)

	assert.True(t, errors.Is(wrapped, ErrNoCandidatePlaces))
	assert.False(t, errors.Is(wrapped, ErrInvalidTravelDays))

	f, ok := AsFailure(wrapped)
	require.True(t, ok)
	assert.Equal(t, FailureNoCandidatePlaces, f.Code)

	_, ok = AsFailure(errors.New("boom"))
	assert.False(t, ok)
}

func TestPlace_Schedulable(t *testing.T) {
	c := &Coordinates{Lat: 1, Lng: 2}

	assert.True(t, Place{Name: "n", Address: "a", Coordinates: c}.Schedulable())
	assert.False(t, Place{Address: "a", Coordinates: c}.Schedulable())
	assert.False(t, Place{Name: "n", Coordinates: c}.Schedulable())
	assert.False(t, Place{Name: "n", Address: "a"}.Schedulable())
}

func TestDistanceKm(t *testing.T) {
	lahore := Coordinates{Lat: 31.5204, Lng: 74.3587}

	assert.InDelta(t, 0, DistanceKm(lahore, lahore), 1e-9)
	// one degree of latitude is roughly 111 km
	assert.InDelta(t, 111.2, DistanceKm(Coordinates{Lat: 0, Lng: 0}, Coordinates{Lat: 1, Lng: 0}), 0.5)
}

func TestBoundsOf(t *testing.T) {
	_, ok := BoundsOf(nil)
	assert.False(t, ok)

	b, ok := BoundsOf([]Coordinates{{Lat: 31.5, Lng: 74.4}, {Lat: 31.7, Lng: 74.2}})

	require.True(t, ok)
	assert.Equal(t, 31.5, b.LatMin)
	assert.Equal(t, 31.7, b.LatMax)
	assert.Equal(t, 74.2, b.LngMin)
	assert.Equal(t, 74.4, b.LngMax)
	assert.InDelta(t, 31.6, b.Lat, 1e-9)
	assert.InDelta(t, 74.3, b.Lng, 1e-9)
}

func TestItinerary_Bounds(t *testing.T) {
	slots := NewDaySlots()
	slots.Add(SlotMorning, ScheduledVisit{Name: "Lahore Fort", Coordinates: Coordinates{Lat: 31.588, Lng: 74.315}})
	it := &Itinerary{Days: []DaySchedule{{DayIndex: 1, Slots: slots}, {DayIndex: 2, Slots: NewDaySlots()}}}

	b, ok := it.Bounds()

	require.True(t, ok)
	assert.Equal(t, 31.588, b.Lat)

	_, ok = (&Itinerary{}).Bounds()
	assert.False(t, ok)
}

func TestScheduledVisit_TravelTimeAsMinutes(t *testing.T) {
	visit := ScheduledVisit{
		Name:             "Lahore Fort",
		Address:          "Fort Rd",
		Coordinates:      Coordinates{Lat: 31.588, Lng: 74.315},
		StartTime:        "09:00",
		EndTime:          "11:00",
		TravelTimeToNext: 65 * time.Minute,
		TravelDistance:   "12 km",
	}

	b, err := json.Marshal(visit)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Lahore Fort","address":"Fort Rd","coordinates":{"lat":31.588,"lng":74.315},
		"start_time":"09:00","end_time":"11:00","travel_minutes_to_next":65,"travel_distance":"12 km"}`, string(b))

	var got ScheduledVisit
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, visit, got)
}

func TestPlace_TravelTimeAsMinutes(t *testing.T) {
	travel := 20 * time.Minute
	withLeg := Place{Name: "Lahore Fort", Address: "Fort Rd", TravelTimeToNext: &travel}

	b, err := json.Marshal(withLeg)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"travel_minutes_to_next":20`)
	assert.NotContains(t, string(b), "travel_time")

	var got Place
	require.NoError(t, json.Unmarshal(b, &got))
	require.NotNil(t, got.TravelTimeToNext)
	assert.Equal(t, travel, *got.TravelTimeToNext)

	b, err = json.Marshal(Place{Name: "Badshahi Mosque"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "travel_minutes_to_next")

	got = Place{}
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Nil(t, got.TravelTimeToNext)
}
