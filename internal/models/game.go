package models

import "time"

// Game is a persisted game record enriched from Steam and HowLongToBeat.
// AppID is nil for rows created from a name-only HLTB lookup.
type Game struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AppID       *int64    `gorm:"column:appid;uniqueIndex" json:"appid"`
	Name        string    `gorm:"size:255;not null;index" json:"name"`
	Description *string   `json:"description"`
	ReleaseDate *string   `gorm:"size:64" json:"release_date"`
	Developer   *string   `gorm:"size:255" json:"developer"`
	Publisher   *string   `gorm:"size:255" json:"publisher"`
	ReviewScore *int      `json:"review_score"`
	Owners      int64     `gorm:"not null;default:0" json:"owners"`
	HLTBID      *int64    `gorm:"column:hltb_id;index" json:"hltb_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	CompletionTimes
}

// CompletionTimes holds the HowLongToBeat statistics, in hours.
type CompletionTimes struct {
	MainAvg     *float64 `gorm:"column:main_avg" json:"main_avg"`
	MainPolled  *float64 `gorm:"column:main_polled" json:"main_polled"`
	MainMedian  *float64 `gorm:"column:main_median" json:"main_median"`
	MainRushed  *float64 `gorm:"column:main_rushed" json:"main_rushed"`
	MainLeisure *float64 `gorm:"column:main_leisure" json:"main_leisure"`

	ExtraAvg     *float64 `gorm:"column:extra_avg" json:"extra_avg"`
	ExtraPolled  *float64 `gorm:"column:extra_polled" json:"extra_polled"`
	ExtraMedian  *float64 `gorm:"column:extra_median" json:"extra_median"`
	ExtraRushed  *float64 `gorm:"column:extra_rushed" json:"extra_rushed"`
	ExtraLeisure *float64 `gorm:"column:extra_leisure" json:"extra_leisure"`

	CompletionistAvg     *float64 `gorm:"column:completionist_avg" json:"completionist_avg"`
	CompletionistPolled  *float64 `gorm:"column:completionist_polled" json:"completionist_polled"`
	CompletionistMedian  *float64 `gorm:"column:completionist_median" json:"completionist_median"`
	CompletionistRushed  *float64 `gorm:"column:completionist_rushed" json:"completionist_rushed"`
	CompletionistLeisure *float64 `gorm:"column:completionist_leisure" json:"completionist_leisure"`
}

// TableName pins the table name used by the enrichment endpoint.
func (Game) TableName() string {
	return "games"
}
