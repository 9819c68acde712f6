package db_models

import "github.com/google/uuid"

// The content entities below are owned by the presentation layer; only the
// AccountID ownership column matters here, so duplicate-account merges can
// rewrite it.

type NewsArticle struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`
	Title     string
	Body      string
}

type Podcast struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`
	Title     string
	AudioURL  string
}

type MeetingRoom struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"` // hosting account
	RoomCode  string    `gorm:"index"`
	Topic     string
}

type MediaUpload struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`
	URL       string
	Kind      string
}
