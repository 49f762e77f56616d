package entity

import (
	"time"
)

const (
	StatKindVisit              = "visit"
	StatKindDownload           = "download"
	StatKindSuccessfulDownload = "successful_download"
)

type StatEvent struct {
	Id        uint   `gorm:"primaryKey"`
	Kind      string `gorm:"size:32;index;not null"`
	Page      string `gorm:"size:64;index"`
	Url       string `gorm:"size:2048"`
	Ip        string `gorm:"size:64"`
	UserAgent string `gorm:"size:255"`
	CreatedAt time.Time `gorm:"index"`
}

type Notification struct {
	Id         uint    `gorm:"primaryKey"`
	Message    string  `gorm:"size:2048;not null"`
	ActionText *string `gorm:"size:255"`
	ActionUrl  *string `gorm:"size:2048"`
	Active     bool    `gorm:"index;not null"`
	SentBy     string  `gorm:"size:64"`
	CreatedAt  time.Time `gorm:"index"`
}

type Activity struct {
	Id        uint    `gorm:"primaryKey"`
	Action    string  `gorm:"size:255;not null"`
	Details   *string `gorm:"size:2048"`
	Ip        string  `gorm:"size:64"`
	CreatedAt time.Time `gorm:"index"`
}
