package model

import "time"

// Project status values.
const (
	ProjectActive    = "active"
	ProjectCompleted = "completed"
	ProjectArchived  = "archived"
)

// Task status values.
const (
	TaskPending     = "pending"
	TaskCompleted   = "completed"
	TaskSkipped     = "skipped"
	TaskRescheduled = "rescheduled"
)

// Task kinds.
const (
	KindWriting  = "writing"
	KindReview   = "review"
	KindPlanning = "planning"
	KindCatchUp  = "catch-up"
)

// DateLayout is the calendar-date form used for due dates and start dates.
const DateLayout = "2006-01-02"

type Member struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex" json:"username"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Project struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	MemberID         int       `gorm:"index" json:"member_id"`
	Title            string    `json:"title"`
	Status           string    `gorm:"default:active" json:"status"`
	StartDate        string    `gorm:"type:date" json:"startDate"`
	TotalTargetWords *int      `json:"totalTargetWords"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Task is one day of the 30-entry curriculum, or an inserted catch-up
// sprint. Plan order is (DayIndex, InsertRank): curriculum tasks have
// InsertRank 0, catch-up sprints share the anchor's DayIndex with a
// higher rank.
type Task struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	ProjectID     string    `gorm:"index;size:36" json:"projectId"`
	DayIndex      int       `json:"dayIndex"`
	InsertRank    int       `json:"insertRank"`
	DueDate       string    `gorm:"type:date" json:"dueDate"`
	Title         string    `json:"title"`
	TargetWords   *int      `json:"targetWords"`
	TargetReduced bool      `json:"-"`
	Kind          string    `json:"kind"`
	Status        string    `gorm:"default:pending" json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Session struct {
	ID          string           `gorm:"primaryKey;size:36" json:"id"`
	ProjectID   string           `gorm:"index;size:36" json:"projectId"`
	TaskID      *string          `gorm:"size:36" json:"taskId"`
	Clarity     *ClarityResponse `gorm:"serializer:json" json:"clarity"`
	Completed   bool             `json:"completed"`
	Minutes     int              `json:"minutes"`
	Words       *int             `json:"words"`
	Mood        *int             `json:"mood"`
	PlannedTime *string          `json:"plannedTime"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// ClarityResponse is the answer set to the three pre-session questions.
type ClarityResponse struct {
	Intention  string `json:"intention"`
	Blocker    string `json:"blocker"`
	NextAction string `json:"nextAction"`
}

// UserSettings is a singleton row per member. It also carries the flow
// flags the anonymous web client used to keep in local storage.
type UserSettings struct {
	MemberID            int     `gorm:"primaryKey" json:"-"`
	Timezone            string  `json:"timezone"`
	PreferredMinutes    int     `gorm:"default:25" json:"preferredMinutes"`
	DaysPerWeek         int     `gorm:"default:7" json:"daysPerWeek"`
	ActiveProjectID     *string `gorm:"size:36" json:"-"`
	HasCompletedSession bool    `json:"-"`
	HasSeenSignupPrompt bool    `json:"-"`
}

// Subscription statuses that map to a paying tier.
const (
	SubFree     = "free"
	SubTrialing = "trialing"
	SubActive   = "active"
)

type Subscription struct {
	MemberID               int        `gorm:"primaryKey" json:"-"`
	ProviderCustomerID     *string    `json:"-"`
	ProviderSubscriptionID *string    `json:"-"`
	Status                 string     `gorm:"default:free" json:"status"`
	PriceID                *string    `json:"priceId"`
	CurrentPeriodEnd       *time.Time `json:"currentPeriodEnd"`
	CancelAtPeriodEnd      bool       `json:"cancelAtPeriodEnd"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}

func (Member) TableName() string       { return "members" }
func (Project) TableName() string      { return "projects" }
func (Task) TableName() string         { return "tasks" }
func (Session) TableName() string      { return "sessions" }
func (UserSettings) TableName() string { return "user_settings" }
func (Subscription) TableName() string { return "subscriptions" }
