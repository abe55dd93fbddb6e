package domain

import "time"

// EventStatus classifies an event relative to the current time.
type EventStatus string

const (
	StatusUpcoming  EventStatus = "upcoming"
	StatusOngoing   EventStatus = "ongoing"
	StatusPast      EventStatus = "past"
	StatusCancelled EventStatus = "cancelled"
)

// OngoingWindow is how long after its start date an event counts as ongoing.
const OngoingWindow = 2 * time.Hour

// ClassifyEvent returns the status of an event starting at eventDate as seen
// at now: upcoming while eventDate is in the future, ongoing from eventDate
// through eventDate+OngoingWindow (both bounds inclusive), past afterwards.
// StatusCancelled is never derived here.
func ClassifyEvent(eventDate, now time.Time) EventStatus {
	if eventDate.After(now) {
		return StatusUpcoming
	}
	if !now.After(eventDate.Add(OngoingWindow)) {
		return StatusOngoing
	}
	return StatusPast
}
