package pickup

import (
	"fmt"
	"time"
)

type Badge struct {
	Text  string
	Class string
}

var badges = map[State]Badge{
	StateOpen:       {Text: "Open", Class: "bg-success"},
	StateInProgress: {Text: "In Progress", Class: "bg-warning text-dark"},
	StateCancelled:  {Text: "Cancelled", Class: "bg-danger"},
	StateCompleted:  {Text: "Completed", Class: "bg-secondary"},
	StateFull:       {Text: "Full", Class: "bg-secondary"},
}

func StatusBadge(s State) Badge {
	if b, ok := badges[s]; ok {
		return b
	}
	return Badge{Text: string(s), Class: "bg-secondary"}
}

const defaultSportIcon = "/assets/icons/default-sport.jpg"

var sportIcons = map[string]string{
	"Chess":           "/assets/icons/chess.jpg",
	"Football":        "/assets/icons/football.jpg",
	"Soccer":          "/assets/icons/soccer.jpg",
	"Basketball":      "/assets/icons/basketball.jpg",
	"Lacrosse":        "/assets/icons/lacrosse.jpg",
	"Tennis":          "/assets/icons/tennis.jpg",
	"FIFA":            "/assets/icons/fifa.jpg",
	"NBA 2K":          "/assets/icons/nba-2k.jpg",
	"Kickboxing":      "/assets/icons/kickboxing.jpg",
	"Karate":          "/assets/icons/karate.jpg",
	"Ye Gena Chewata": "/assets/icons/ye-gena-chewata.jpg",
	"Frisbee":         "/assets/icons/frisbee.jpg",
	"Ping Pong":       "/assets/icons/ping-pong.jpg",
}

// SportIcon looks the sport up by its exact display name.
func SportIcon(name string) string {
	if icon, ok := sportIcons[name]; ok {
		return icon
	}
	return defaultSportIcon
}

func ordinal(n int) string {
	if v := n % 100; v >= 11 && v <= 13 {
		return "th"
	}

	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// FormatStart renders t like "Sunday, June 1st at 6:00 PM".
func FormatStart(t time.Time) string {
	return fmt.Sprintf("%s, %s %d%s at %s",
		t.Weekday(), t.Month(), t.Day(), ordinal(t.Day()), t.Format("3:04 PM"))
}
