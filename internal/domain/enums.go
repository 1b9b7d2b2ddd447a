package domain

type TaskType string

const (
	TaskProject    TaskType = "project"
	TaskAssignment TaskType = "assignment"
	TaskHousehold  TaskType = "household"
	TaskCourse     TaskType = "course"
	TaskPersonal   TaskType = "personal"
	TaskMeeting    TaskType = "meeting"
)

type TimeBlockStatus string

const (
	BlockScheduled   TimeBlockStatus = "scheduled"
	BlockConfirmed   TimeBlockStatus = "confirmed"
	BlockCompleted   TimeBlockStatus = "completed"
	BlockSkipped     TimeBlockStatus = "skipped"
	BlockRescheduled TimeBlockStatus = "rescheduled"
)

type Recurrence string

const (
	RecurrenceNone     Recurrence = "none"
	RecurrenceDaily    Recurrence = "daily"
	RecurrenceWeekly   Recurrence = "weekly"
	RecurrenceBiweekly Recurrence = "biweekly"
	RecurrenceMonthly  Recurrence = "monthly"
	RecurrenceCustom   Recurrence = "custom"
)

// ParseRecurrence maps a raw persistence string to a Recurrence value.
// Unrecognized strings map to RecurrenceCustom, which the scheduler treats
// as weekly cadence.
func ParseRecurrence(s string) Recurrence {
	switch Recurrence(s) {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceBiweekly, RecurrenceMonthly:
		return Recurrence(s)
	default:
		return RecurrenceCustom
	}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type TimePreference string

const (
	PreferMorning   TimePreference = "morning"
	PreferAfternoon TimePreference = "afternoon"
	PreferEvening   TimePreference = "evening"
	PreferAnytime   TimePreference = "anytime"
)

// ValidTimePreferences is the canonical set of accepted preference strings.
var ValidTimePreferences = map[string]bool{
	"morning": true, "afternoon": true, "evening": true, "anytime": true,
}

// SourceDocumentParser marks projects created by the syllabus/document
// import pipeline. They are treated as academic: scheduled in personal
// time and exempt from proportional allocation tracking.
const SourceDocumentParser = "document_parser"

// SourceManual marks entities created directly through the CLI.
const SourceManual = "manual"
