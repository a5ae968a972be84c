package model

// User roles. Login accepts all four; signup only offers citizen and
// politician.
const (
	RoleCitizen    = "citizen"
	RolePolitician = "politician"
	RoleAdmin      = "admin"
	RoleModerator  = "moderator"
)

// Issue categories.
const (
	CategoryInfrastructure = "infrastructure"
	CategoryHealthcare     = "healthcare"
	CategoryEducation      = "education"
	CategoryEnvironment    = "environment"
	CategorySafety         = "safety"
	CategoryTransport      = "transport"
)

// Issue statuses.
const (
	StatusOpen       = "open"
	StatusInProgress = "in-progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
	StatusUrgent     = "urgent"
)

// Update types.
const (
	UpdatePolicy        = "policy"
	UpdateEvents        = "events"
	UpdateAnnouncements = "announcements"
)

// Modal keys.
const (
	ModalLogin  = "login"
	ModalSignup = "signup"
	ModalReport = "report"
)

// SectionDefault is where navigation lands on startup and after logout.
const SectionDefault = "dashboard"

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Location string `json:"location"`
	JoinDate string `json:"joinDate"`
	Avatar   string `json:"avatar"`
}

type Issue struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Category           string `json:"category"`
	Description        string `json:"description"`
	Location           string `json:"location"`
	Status             string `json:"status"`
	Author             string `json:"author"`
	Date               string `json:"date"`
	Votes              int    `json:"votes"`
	Comments           int    `json:"comments"`
	PoliticianResponse string `json:"politicianResponse,omitempty"`
	Resolution         string `json:"resolution,omitempty"`
}

type Politician struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Title        string  `json:"title"`
	Party        string  `json:"party"`
	Messages     int     `json:"messages"`
	Rating       float64 `json:"rating"`
	ResponseRate int     `json:"responseRate"`
	Avatar       string  `json:"avatar"`
}

type Update struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Date     string `json:"date"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Author   string `json:"author"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
}

type Activity struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Icon        string `json:"icon"`
}

// Filters narrows the visible issue list. Empty fields impose no
// constraint.
type Filters struct {
	Category string `json:"category"`
	Status   string `json:"status"`
	Search   string `json:"search"`
}

// FilterPatch merges into Filters; nil fields leave the current value
// untouched.
type FilterPatch struct {
	Category *string `json:"category,omitempty"`
	Status   *string `json:"status,omitempty"`
	Search   *string `json:"search,omitempty"`
}

// Modals holds the three independent modal visibility flags.
type Modals struct {
	Login  bool `json:"login"`
	Signup bool `json:"signup"`
	Report bool `json:"report"`
}

// Stats is derived state. TotalIssues is the seed-time base plus the live
// issue count; ResolvedIssues and ActivePoliticians are seed-time constants.
type Stats struct {
	TotalIssues       int `json:"totalIssues"`
	ResolvedIssues    int `json:"resolvedIssues"`
	ActivePoliticians int `json:"activePoliticians"`
}

// Operation inputs: one structured record per form-submitting container
// operation.

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Location string `json:"location"`
}

type ReportIssueInput struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Urgent      bool   `json:"urgent"`
}

type SettingsInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location"`
}

type AppError string

func (e AppError) Error() string { return string(e) }

const (
	ErrNotFound = AppError("NOT_FOUND")
)
