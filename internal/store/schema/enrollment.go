package schema

import "time"

// Enrollment is the off-chain mirror of an on-chain course enrollment.
// It is a read optimization only; on-chain state wins in any conflict.
type Enrollment struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	CourseSlug string    `gorm:"type:text;not null;uniqueIndex:idx_enrollment_course_address,priority:1"`
	Address    string    `gorm:"type:text;not null;uniqueIndex:idx_enrollment_course_address,priority:2"` // lowercased
	Method     string    `gorm:"type:text;not null;default:''"`                                           // sponsored, wallet or reconciled
	TxHash     *string   `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
