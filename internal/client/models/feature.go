package models

import "time"

// Mood is the diary mood scale used by the journal screens.
type Mood string

const (
	MoodGreat Mood = "GREAT"
	MoodGood  Mood = "GOOD"
	MoodOkay  Mood = "OKAY"
	MoodBad   Mood = "BAD"
	MoodAwful Mood = "AWFUL"
)

func (m Mood) Valid() bool {
	switch m {
	case MoodGreat, MoodGood, MoodOkay, MoodBad, MoodAwful:
		return true
	}
	return false
}

// DiaryEntry is one journal record.
type DiaryEntry struct {
	ID        ID        `json:"id"`
	Content   string    `json:"content"`
	Mood      Mood      `json:"mood"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DiaryInput is the create/update payload for a diary entry.
type DiaryInput struct {
	Content string   `json:"content"`
	Mood    Mood     `json:"mood"`
	Tags    []string `json:"tags,omitempty"`
}

// Frequency is how often a habit is expected to be performed.
type Frequency string

const (
	FrequencyDaily  Frequency = "DAILY"
	FrequencyWeekly Frequency = "WEEKLY"
)

func (f Frequency) Valid() bool {
	return f == FrequencyDaily || f == FrequencyWeekly
}

type Habit struct {
	ID             ID        `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Frequency      Frequency `json:"frequency"`
	Streak         int       `json:"streak"`
	CompletedToday bool      `json:"completedToday"`
	CreatedAt      time.Time `json:"createdAt"`
}

type HabitInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Frequency   Frequency `json:"frequency"`
}

// GoalStatus tracks a goal's lifecycle.
type GoalStatus string

const (
	GoalInProgress GoalStatus = "IN_PROGRESS"
	GoalCompleted  GoalStatus = "COMPLETED"
	GoalAbandoned  GoalStatus = "ABANDONED"
)

func (s GoalStatus) Valid() bool {
	switch s {
	case GoalInProgress, GoalCompleted, GoalAbandoned:
		return true
	}
	return false
}

// Goal progress is a percentage in [0, 100].
type Goal struct {
	ID          ID         `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Progress    int        `json:"progress"`
	TargetDate  *time.Time `json:"targetDate,omitempty"`
	Status      GoalStatus `json:"status"`
}

type GoalInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	TargetDate  *time.Time `json:"targetDate,omitempty"`
}

// GoalPatch carries the fields a goal update may change; nil means keep.
type GoalPatch struct {
	Title    *string     `json:"title,omitempty"`
	Progress *int        `json:"progress,omitempty"`
	Status   *GoalStatus `json:"status,omitempty"`
}

type Todo struct {
	ID        ID         `json:"id"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

type TodoInput struct {
	Title   string     `json:"title"`
	DueDate *time.Time `json:"dueDate,omitempty"`
}

// Author is the public profile attached to a community message.
type Author struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type Message struct {
	ID        ID        `json:"id"`
	Content   string    `json:"content"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}
