package event

import (
	"strconv"
	"strings"
)

var typeNames = [eventTypeCount]string{
	EventTick:                "Tick",
	EventTravelRequest:       "EventTravelRequest",
	EventTravelCancel:        "EventTravelCancel",
	EventTravelRouteAssigned: "EventTravelRouteAssigned",
	EventTravelNoRoute:       "EventTravelNoRoute",
	EventTravelFailed:        "EventTravelFailed",
	EventTravelComplete:      "EventTravelComplete",
	EventGateTransitStart:    "EventGateTransitStart",
	EventGateTransitComplete: "EventGateTransitComplete",
	EventWarpEngaged:         "EventWarpEngaged",
	EventWarpDisengaged:      "EventWarpDisengaged",
	EventGalaxyReady:         "EventGalaxyReady",
}

var nameToType = func() map[string]EventType {
	m := make(map[string]EventType, len(typeNames))
	for i, name := range typeNames {
		m[strings.ToLower(name)] = EventType(i)
	}
	return m
}()

// GetEventType returns the EventType for a given name, case-insensitive
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[strings.ToLower(name)]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if et < 0 || et >= eventTypeCount {
		return "EventUnknown(" + strconv.Itoa(int(et)) + ")"
	}
	return typeNames[et]
}

func (et EventType) String() string {
	return GetEventName(et)
}
