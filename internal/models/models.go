package models

import (
	"time"

	"github.com/lib/pq"
)

// Preferences are unordered sets of strings the user picked at
// registration. Stored as text[] columns on the users table.
type Preferences struct {
	Industries     pq.StringArray `json:"industries" db:"industries"`
	ContentTypes   pq.StringArray `json:"contentTypes" db:"content_types"`
	TargetAudience pq.StringArray `json:"targetAudience" db:"target_audiences"`
}

// User embeds Preferences so sqlx maps the text[] columns without a
// prefix. The HTTP layer regroups them under a "preferences" key.
type User struct {
	UserID       string `json:"id" db:"user_id"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Preferences
	CreatedAt time.Time `json:"date" db:"created_at"`
}

// ContentTypes is the closed set of valid idea content types.
var ContentTypes = []string{"blog", "video", "social"}

type Idea struct {
	IdeaID      string         `json:"id" db:"idea_id"`
	UserID      string         `json:"user" db:"user_id"`
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description" db:"description"`
	ContentType string         `json:"contentType" db:"content_type"`
	Keywords    pq.StringArray `json:"keywords" db:"keywords"`
	Industry    string         `json:"industry" db:"industry"`
	Saved       bool           `json:"saved" db:"saved"`
	CreatedAt   time.Time      `json:"date" db:"created_at"`
}

// IdeaDraft is a generated suggestion that has not been persisted yet.
type IdeaDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ContentType string   `json:"contentType"`
	Keywords    []string `json:"keywords"`
	Industry    string   `json:"industry"`
}
