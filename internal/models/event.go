package models

type Event struct {
	ID                 uint   `json:"id" gorm:"primaryKey"`
	CollegeID          uint   `json:"college_id" gorm:"index;not null"`
	FestID             *uint  `json:"fest_id" gorm:"index"`
	Name               string `json:"name" gorm:"not null"`
	Description        string `json:"description" gorm:"type:text"`
	EventDate          string `json:"event_date" gorm:"not null"`
	Fees               int    `json:"fees" gorm:"not null;default:0"`
	Location           string `json:"location"`
	Capacity           int    `json:"capacity" gorm:"not null"`
	TeamAllowed        bool   `json:"team_allowed" gorm:"not null;default:false"`
	Category           string `json:"category" gorm:"type:varchar(100)"`
	Mode               string `json:"mode" gorm:"type:varchar(20)"`
	PosterURL          string `json:"poster_url"`
	PosterThumbnailURL string `json:"poster_thumbnail_url"`
	PosterKey          string `json:"-"`
	PosterImageID      string `json:"-"`
	PosterApproved     bool   `json:"poster_approved" gorm:"not null;default:false"`
}

type EventRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	FestID      *uint  `json:"fest_id"`
	EventDate   string `json:"event_date" validate:"required"`
	Fees        int    `json:"fees" validate:"gte=0"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity" validate:"required,gte=1"`
	TeamAllowed bool   `json:"team_allowed"`
	Category    string `json:"category"`
	Mode        string `json:"mode"`
}

// ExploreEventQuery carries the public event search filters.
type ExploreEventQuery struct {
	Category string
	Mode     string
	Date     string
	EntryFee string // "free" or "paid"
	Team     *bool
	FestName string
	College  string
	Location string
	Sort     string // date_asc, date_desc, popularity, fee_asc, fee_desc
}

type ExploreFestQuery struct {
	Name      string
	College   string
	StartDate string
	EndDate   string
}
