package models

// Document is a file attached to a project.
type Document struct {
	Base
	ProjectID   string `gorm:"size:36;index;not null" json:"project_id"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	FileURL     string `gorm:"size:500;not null" json:"file_url"`
	FileType    string `gorm:"size:120;not null" json:"file_type"`
	FileSize    int64  `gorm:"not null" json:"file_size"`
	UploadedBy  string `gorm:"size:36;not null" json:"uploaded_by"`
}
