package model

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// OnboardingRequest is the answer set collected by the onboarding flow.
type OnboardingRequest struct {
	ProjectTitle           string `json:"projectTitle" binding:"required"`
	TotalTargetWords       *int   `json:"totalTargetWords"`
	StartDate              string `json:"startDate" binding:"required"`
	DaysPerWeek            int    `json:"daysPerWeek" binding:"required,min=1,max=7"`
	PreferredSessionLength int    `json:"preferredSessionLength"`
	Timezone               string `json:"timezone"`
}

type RecalibrateRequest struct {
	MissedTaskIDs []string `json:"missedTaskIds"`
	ReduceTargets bool     `json:"reduceTargets"`
}

type CatchUpRequest struct {
	AfterTaskID string `json:"afterTaskId" binding:"required"`
}

type CheckInRequest struct {
	Completed bool `json:"completed"`
	Minutes   int  `json:"minutes" binding:"min=0"`
	Words     *int `json:"words"`
	Mood      *int `json:"mood"`
}

type NextStepRequest struct {
	PlannedTime string `json:"plannedTime"` // HH:MM, empty when skipped
}

// MomentumData is derived from task and session history on every read;
// it is never persisted.
type MomentumData struct {
	Score          int           `json:"score"`
	Status         string        `json:"status"`
	CompletedTasks int           `json:"completedTasks"`
	TotalTasks     int           `json:"totalTasks"`
	Streak         int           `json:"-"` // internal, deliberately hidden
	RiskLevel      string        `json:"riskLevel"`
	Intervention   *Intervention `json:"intervention"`
}

// Momentum statuses.
const (
	StatusOnTrack        = "on-track"
	StatusSlightlyBehind = "slightly-behind"
	StatusBehind         = "behind"
)

// Risk levels.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Intervention types.
const (
	InterventionRescueSprint = "rescue-sprint"
	InterventionReduceTarget = "reduce-target"
	InterventionReschedule   = "reschedule"
)

type Intervention struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Action  string `json:"action"`
}

// MigrationPayload is the full set of locally-held records a client
// uploads after creating an account.
type MigrationPayload struct {
	Projects []Project `json:"projects"`
	Tasks    []Task    `json:"tasks"`
	Sessions []Session `json:"sessions"`
}

// MigrationResult reports per-category outcomes; one failed category
// does not block the others.
type MigrationResult struct {
	ProjectsFailed bool   `json:"projectsFailed"`
	TasksFailed    bool   `json:"tasksFailed"`
	SessionsFailed bool   `json:"sessionsFailed"`
	Error          string `json:"error,omitempty"`
}

func (r MigrationResult) OK() bool {
	return !r.ProjectsFailed && !r.TasksFailed && !r.SessionsFailed
}

// ProgressPoint is one day in the progress chart series.
type ProgressPoint struct {
	Date    string `json:"date"`
	Words   int    `json:"words"`
	Minutes int    `json:"minutes"`
}
