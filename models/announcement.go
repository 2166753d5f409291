package models

import "time"

// Announcement is a broadcast message authored by an admin user.
type Announcement struct {
	ID               int64     `json:"id"`
	AnnouncementText string    `json:"announcement_text"`
	AdminID          int64     `json:"admin_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Announcement model.
func (a Announcement) TableName() string {
	return "announcements"
}

// AnnouncementIn is the create/update payload for an announcement.
type AnnouncementIn struct {
	AnnouncementText string `json:"announcement_text"`
	AdminID          int64  `json:"admin_id"`
}

// AnnouncementOut is an announcement enriched with the author's display
// name and role for list views.
type AnnouncementOut struct {
	Announcement
	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty"`
}
