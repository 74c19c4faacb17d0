package models

// Notification is shown on a profile's dashboard.
type Notification struct {
	Base
	UserID  string           `gorm:"size:36;index;not null" json:"user_id"`
	Title   string           `gorm:"size:200;not null" json:"title"`
	Message string           `gorm:"type:text" json:"message"`
	Type    NotificationType `gorm:"type:varchar(20);not null;default:'info'" json:"type"`
	Read    bool             `gorm:"not null;default:false" json:"read"`
	Link    string           `gorm:"size:500" json:"link,omitempty"`
}

// ActivityLog records an action taken on an entity.
type ActivityLog struct {
	Base
	UserID     string                 `gorm:"size:36;index" json:"user_id"`
	Action     string                 `gorm:"size:100;not null" json:"action"`
	EntityType string                 `gorm:"size:50;not null" json:"entity_type"`
	EntityID   string                 `gorm:"size:36;not null" json:"entity_id"`
	Details    map[string]interface{} `gorm:"serializer:json" json:"details,omitempty"`
}
