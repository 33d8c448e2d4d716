package models

import (
	"encoding/json"
	"time"
)

type Slot string

const (
	SlotMorning   Slot = "Morning"
	SlotAfternoon Slot = "Afternoon"
	SlotEvening   Slot = "Evening"
)

var Slots = []Slot{SlotMorning, SlotAfternoon, SlotEvening}

// SlotForTime classifies a visit by its start time only.
func SlotForTime(t time.Time) Slot {
	switch h := t.Hour(); {
	case h < 12:
		return SlotMorning
	case h < 17:
		return SlotAfternoon
	default:
		return SlotEvening
	}
}

type ScheduledVisit struct {
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
	StartTime   string      `json:"start_time"`
	EndTime     string      `json:"end_time"`
	// TravelTimeToNext is the leg taken after this visit, before the next one
	// starts. It goes over the wire as whole minutes (travel_minutes_to_next).
	TravelTimeToNext time.Duration `json:"-"`
	TravelDistance   string        `json:"travel_distance,omitempty"`
}

func (v ScheduledVisit) MarshalJSON() ([]byte, error) {
	type alias ScheduledVisit
	return json.Marshal(struct {
		alias
		TravelMinutesToNext int64 `json:"travel_minutes_to_next"`
	}{alias(v), int64(v.TravelTimeToNext / time.Minute)})
}

func (v *ScheduledVisit) UnmarshalJSON(data []byte) error {
	type alias ScheduledVisit
	aux := struct {
		*alias
		TravelMinutesToNext int64 `json:"travel_minutes_to_next"`
	}{alias: (*alias)(v)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	v.TravelTimeToNext = time.Duration(aux.TravelMinutesToNext) * time.Minute
	return nil
}

// DaySlots always marshals all three periods, empty ones as [].
type DaySlots struct {
	Morning   []ScheduledVisit `json:"Morning"`
	Afternoon []ScheduledVisit `json:"Afternoon"`
	Evening   []ScheduledVisit `json:"Evening"`
}

func NewDaySlots() DaySlots {
	return DaySlots{
		Morning:   []ScheduledVisit{},
		Afternoon: []ScheduledVisit{},
		Evening:   []ScheduledVisit{},
	}
}

func (s *DaySlots) Add(slot Slot, v ScheduledVisit) {
	switch slot {
	case SlotMorning:
		s.Morning = append(s.Morning, v)
	case SlotAfternoon:
		s.Afternoon = append(s.Afternoon, v)
	default:
		s.Evening = append(s.Evening, v)
	}
}

func (s DaySlots) Get(slot Slot) []ScheduledVisit {
	switch slot {
	case SlotMorning:
		return s.Morning
	case SlotAfternoon:
		return s.Afternoon
	default:
		return s.Evening
	}
}

type DaySchedule struct {
	DayIndex int      `json:"day_index"`
	Slots    DaySlots `json:"slots"`
}

func (d DaySchedule) VisitCount() int {
	return len(d.Slots.Morning) + len(d.Slots.Afternoon) + len(d.Slots.Evening)
}

// Visits returns the day's visits in arrival order.
func (d DaySchedule) Visits() []ScheduledVisit {
	out := make([]ScheduledVisit, 0, d.VisitCount())
	for _, slot := range Slots {
		out = append(out, d.Slots.Get(slot)...)
	}
	return out
}

type Itinerary struct {
	ID            string             `json:"id"`
	Destination   string             `json:"destination"`
	StartLocation string             `json:"start_location"`
	TravelDays    int                `json:"travel_days"`
	Activities    []ActivityCategory `json:"activities"`
	Companions    string             `json:"companions,omitempty"`
	Budget        string             `json:"budget,omitempty"`
	Days          []DaySchedule      `json:"days"`
	Weather       []WeatherForecast  `json:"weather"`
	Narrative     string             `json:"narrative,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}
