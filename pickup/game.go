package pickup

import "time"

type State string

const (
	StateOpen       State = "open"
	StateInProgress State = "in_progress"
	StateCancelled  State = "cancelled"
	StateCompleted  State = "completed"
	// StateFull is still emitted by older backend builds.
	StateFull State = "full"
)

type SkillLevel string

const (
	SkillAll          SkillLevel = "all"
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

var SkillLevels = []SkillLevel{SkillAll, SkillBeginner, SkillIntermediate, SkillAdvanced}

func (s SkillLevel) Label() string {
	switch s {
	case SkillBeginner:
		return "Beginner"
	case SkillIntermediate:
		return "Intermediate"
	case SkillAdvanced:
		return "Advanced"
	default:
		return "All Levels"
	}
}

type Sport struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DisplayName falls back to the email when the user never set a name.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

type Participant struct {
	ID   int  `json:"id"`
	User User `json:"user"`
}

type Game struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Sport        Sport         `json:"sport"`
	Location     string        `json:"location"`
	Latitude     *float64      `json:"latitude,omitempty"`
	Longitude    *float64      `json:"longitude,omitempty"`
	StartTime    time.Time     `json:"start_time"`
	EndTime      time.Time     `json:"end_time"`
	SkillLevel   SkillLevel    `json:"skill_level"`
	Capacity     *int          `json:"capacity"`
	Creator      User          `json:"creator"`
	Participants []Participant `json:"participants"`
	CurrentState State         `json:"current_state"`
	ImageURL     string        `json:"image_url,omitempty"`
}

type Profile struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Bio            string  `json:"bio"`
	FavoriteSports []Sport `json:"favorite_sports"`
}

func (p Profile) User() User {
	return User{ID: p.ID, Name: p.Name, Email: p.Email}
}

type Comment struct {
	ID         int       `json:"id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	Created    time.Time `json:"created"`
	Game       int       `json:"game"`
}

// Credentials is what login and signup exchange for a token.
type Credentials struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type Signup struct {
	Name     string `json:"name,omitempty" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}
