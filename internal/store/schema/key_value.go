package schema

import "time"

// KeyValue stores arbitrary key-value pairs for engine state.
// Used for the persisted wallet selection and the owner -> smart-account
// address mapping.
type KeyValue struct {
	Key       string    `gorm:"primaryKey;type:text"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (KeyValue) TableName() string {
	return "key_value_store"
}
