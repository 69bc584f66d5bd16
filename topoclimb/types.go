package topoclimb

import (
	"time"

	"github.com/topoclimb/topoclimb-gateway/grade"
)

// Site is a climbing site (a crag or a gym) on one backend instance.
type Site struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// GradingSystem overrides the default grade conversion for this site's
	// routes when present.
	GradingSystem *grade.System `json:"grading_system,omitempty"`
}

// Area is a named part of a site (e.g. one wall of a gym).
type Area struct {
	ID          int64  `json:"id"`
	SiteID      int64  `json:"site_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Sector groups lines inside an area.
type Sector struct {
	ID     int64  `json:"id"`
	AreaID int64  `json:"area_id"`
	Name   string `json:"name"`
}

// Line is one physical line of holds or rock; routes are set on lines.
type Line struct {
	ID       int64  `json:"id"`
	SectorID int64  `json:"sector_id"`
	Name     string `json:"name"`
}

// Route is a single climbable route.
type Route struct {
	ID          int64  `json:"id"`
	SiteID      int64  `json:"site_id"`
	LineID      int64  `json:"line_id,omitempty"`
	Name        string `json:"name"`
	Grade       string `json:"grade"`
	GradePoints int    `json:"grade_points,omitempty"`
	Style       string `json:"style,omitempty"` // "sport", "boulder", "trad", ...
	Height      int    `json:"height,omitempty"`
	Description string `json:"description,omitempty"`
}

// RouteLog is one recorded ascent of a route.
type RouteLog struct {
	ID         int64     `json:"id"`
	RouteID    int64     `json:"route_id"`
	UserID     int64     `json:"user_id"`
	AscentType string    `json:"ascent_type"` // "onsight", "flash", "redpoint", ...
	Comment    string    `json:"comment,omitempty"`
	ClimbedAt  time.Time `json:"climbed_at"`
}

// Contest is a competition hosted by a site.
type Contest struct {
	ID       int64     `json:"id"`
	SiteID   int64     `json:"site_id"`
	Name     string    `json:"name"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

// ContestStep is one phase of a contest (qualifiers, finals, ...).
type ContestStep struct {
	ID        int64  `json:"id"`
	ContestID int64  `json:"contest_id"`
	Name      string `json:"name"`
	Order     int    `json:"order"`
}

// ContestRanking is one row of a contest step's leaderboard.
type ContestRanking struct {
	Position int    `json:"position"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// User is a profile on one backend instance.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RouteFilter narrows a route listing. Zero values mean "no constraint".
// MinGrade/MaxGrade carry grade labels; the backend compares by points.
type RouteFilter struct {
	SiteID   int64
	AreaID   int64
	LineID   int64
	Style    string
	MinGrade string
	MaxGrade string
}
