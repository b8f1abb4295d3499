package persistence

import (
	"gorm.io/gorm"
)

//Dataset ...
type Dataset struct {
	gorm.Model
	DatasetID  string `gorm:"uniqueIndex"`
	Title      string
	Notes      string
	Type       string
	Version    string
	Owner      string
	Private    bool
	AcquireURL string
}
