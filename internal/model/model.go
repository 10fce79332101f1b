package model

import (
	"strings"
	"time"
)

type IdeaStatus string

const (
	IdeaPending   IdeaStatus = "PENDING"
	IdeaViewed    IdeaStatus = "VIEWED"
	IdeaResponded IdeaStatus = "RESPONDED"
)

type Audience string

const (
	AudienceAll      Audience = "ALL"
	AudienceSpecific Audience = "SPECIFIC"
)

type DesireCategory string

const (
	DesireShortTerm DesireCategory = "SHORT_TERM"
	DesireLongTerm  DesireCategory = "LONG_TERM"
)

// Name is a roster entry eligible for task assignment.
type Name struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// Task is a day-scoped assignment of a roster name to a rotation duty.
// TaskName may be empty for normal tasks (the service leaves the duty
// label to the coordinator for some slots).
type Task struct {
	ID            int64  `json:"id"`
	NameID        int64  `json:"nameId"`
	Name          string `json:"name"`
	TaskName      string `json:"taskName"`
	IsSpecialTask bool   `json:"isSpecialTask"`
}

type Idea struct {
	ID            int64      `json:"id"`
	Username      string     `json:"username"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Status        IdeaStatus `json:"status"`
	AdminResponse string     `json:"adminResponse,omitempty"`
	CreatedAt     *Timestamp `json:"createdAt,omitempty"`
	ViewedAt      *Timestamp `json:"viewedAt,omitempty"`
	RespondedAt   *Timestamp `json:"respondedAt,omitempty"`
}

type Announcement struct {
	ID               int64      `json:"id"`
	Title            string     `json:"title"`
	Content          string     `json:"content"`
	SendTo           Audience   `json:"sendTo"`
	SpecificUsername string     `json:"specificUsername,omitempty"`
	CreatedAt        *Timestamp `json:"createdAt,omitempty"`
	ExpiresAt        *Timestamp `json:"expiresAt,omitempty"`
}

type Desire struct {
	ID          int64          `json:"id"`
	Description string         `json:"description"`
	Category    DesireCategory `json:"category"`
	CreatedAt   *Timestamp     `json:"createdAt,omitempty"`
	UpdatedAt   *Timestamp     `json:"updatedAt,omitempty"`
}

// MonthlyDesire is a singleton per month; setting a new one replaces the
// current message wholesale.
type MonthlyDesire struct {
	ID        int64      `json:"id"`
	Message   string     `json:"message"`
	MonthYear string     `json:"monthYear,omitempty"`
	CreatedAt *Timestamp `json:"createdAt,omitempty"`
	UpdatedAt *Timestamp `json:"updatedAt,omitempty"`
}

// User is the read-only shape returned by /users/active for targeting
// announcements. The service never exposes credentials here.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName,omitempty"`
}

type UserActivity struct {
	ID         int64      `json:"id"`
	Username   string     `json:"username"`
	VisitCount int        `json:"visitCount"`
	LastVisit  *Timestamp `json:"lastVisit,omitempty"`
	CreatedAt  *Timestamp `json:"createdAt,omitempty"`
}

type ActivityStats struct {
	TotalVisits int64 `json:"totalVisits"`
}

type DashboardStats struct {
	TotalNames        int        `json:"totalNames"`
	ActiveNames       int        `json:"activeNames"`
	TasksToday        int        `json:"tasksToday"`
	NormalTasks       int        `json:"normalTasks"`
	SpecialTasks      int        `json:"specialTasks"`
	CurrentDate       *Timestamp `json:"currentDate,omitempty"`
	LatestSessionDate *Timestamp `json:"latestSessionDate,omitempty"`
}

// CanMarkViewed reports whether the "mark viewed" action applies; the
// status progression is monotonic and the service rejects regressions,
// so the client only offers the action from PENDING.
func (i Idea) CanMarkViewed() bool { return i.Status == IdeaPending }

func (a Announcement) ForEveryone() bool { return a.SendTo == AudienceAll }

// ParseDesireCategory maps user-facing spellings onto the wire enum.
func ParseDesireCategory(s string) (DesireCategory, bool) {
	switch strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")) {
	case "SHORT_TERM", "SHORT":
		return DesireShortTerm, true
	case "LONG_TERM", "LONG":
		return DesireLongTerm, true
	}
	return "", false
}

// Timestamp decodes the service's timestamps. The backend serializes
// LocalDateTime without a zone offset ("2025-09-01T10:15:30"), which the
// stock time.Time decoder rejects, so we accept that shape alongside
// RFC3339 and plain dates.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
		lastErr = err
	}
	return lastErr
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Time.Format(time.RFC3339) + `"`), nil
}
