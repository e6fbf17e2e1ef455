package schema

import "time"

// ModuleCompletion mirrors an on-chain module completion record
type ModuleCompletion struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	CourseSlug  string    `gorm:"type:text;not null;uniqueIndex:idx_completion_course_address_module,priority:1"`
	Address     string    `gorm:"type:text;not null;uniqueIndex:idx_completion_course_address_module,priority:2"` // lowercased
	ModuleIndex uint32    `gorm:"not null;uniqueIndex:idx_completion_course_address_module,priority:3"`           // zero-based; the contract uses 1-based
	TxHash      *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (ModuleCompletion) TableName() string {
	return "module_completions"
}
