package entity

import (
	"time"
)

type Role string

const (
	RoleMentor Role = "MENTOR"
	RoleMentee Role = "MENTEE"
)

type Interest string

const (
	InterestDevelopment Interest = "DEVELOPMENT"
	InterestDesign      Interest = "DESIGN"
	InterestMarketing   Interest = "MARKETING"
	InterestLanguage    Interest = "LANGUAGE"
	InterestMusic       Interest = "MUSIC"
	InterestCooking     Interest = "COOKING"
	InterestSports      Interest = "SPORTS"
	InterestFinance     Interest = "FINANCE"
)

var interestDisplayNames = map[Interest]string{
	InterestDevelopment: "Development",
	InterestDesign:      "Design",
	InterestMarketing:   "Marketing",
	InterestLanguage:    "Language",
	InterestMusic:       "Music",
	InterestCooking:     "Cooking",
	InterestSports:      "Sports",
	InterestFinance:     "Finance",
}

// DisplayName returns the user-facing label for the interest. Unknown values
// fall back to the raw enum string.
func (i Interest) DisplayName() string {
	if name, ok := interestDisplayNames[i]; ok {
		return name
	}
	return string(i)
}

type ActivityTime string

const (
	ActivityTimeMorning   ActivityTime = "MORNING"
	ActivityTimeAfternoon ActivityTime = "AFTERNOON"
	ActivityTimeEvening   ActivityTime = "EVENING"
	ActivityTimeAnytime   ActivityTime = "ANYTIME"
)

type ActivityType string

const (
	ActivityTypeOnline  ActivityType = "ONLINE"
	ActivityTypeOffline ActivityType = "OFFLINE"
	ActivityTypeBoth    ActivityType = "BOTH"
)

type User struct {
	ID              string       `json:"id"`
	Provider        string       `json:"provider"`
	ProviderID      string       `json:"provider_id"`
	Name            string       `json:"name"`
	Nickname        string       `json:"nickname"` // globally unique
	Role            Role         `json:"role"`
	ProfileImageURL string       `json:"profile_image_url"`
	AccountDisabled bool         `json:"account_disabled"`
	AreaID          *int         `json:"area_id,omitempty"`
	SigunguCode     *string      `json:"sigungu_code,omitempty"`
	Introduction    string       `json:"introduction,omitempty"`
	Interest        Interest     `json:"interest,omitempty"`
	ActivityTime    ActivityTime `json:"activity_time,omitempty"`
	ActivityType    ActivityType `json:"activity_type,omitempty"`
	ContactLink     string       `json:"contact_link,omitempty"`
	MatchStatus     bool         `json:"match_status"`
	ProfileTag      string       `json:"profile_tag,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
