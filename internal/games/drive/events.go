package drive

// EventTag names a discrete cue for audio, haptics and toasts.
type EventTag string

const (
	EventPenalty     EventTag = "penalty"
	EventStageStart  EventTag = "stage-start"
	EventPhaseGreen  EventTag = "phase-green"
	EventPerfect     EventTag = "perfect"
	EventStageClear  EventTag = "stage-clear"
	EventGear        EventTag = "gear"
	EventRunFinished EventTag = "run-finished"
)

// Event is one cue raised during a tick. Text is a short human caption
// the host may show; consumers that only need the cue ignore it.
type Event struct {
	Tag  EventTag
	Text string
}

// eventQueue collects events until the host drains them.
type eventQueue struct {
	pending []Event
}

func (q *eventQueue) emit(tag EventTag, text string) {
	q.pending = append(q.pending, Event{Tag: tag, Text: text})
}

func (q *eventQueue) drain() []Event {
	out := q.pending
	q.pending = nil
	return out
}
