package pickup

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

// DateTimeLocal is the layout of an HTML datetime-local input.
const DateTimeLocal = "2006-01-02T15:04"

type StartPolicy string

const (
	// StartFuture rejects a start time at or before submission time.
	StartFuture StartPolicy = "future"
	// StartAny only checks ordering against the end time.
	StartAny StartPolicy = "any"
)

// GameForm mirrors the create/edit inputs as submitted by the browser.
type GameForm struct {
	Name       string `form:"name"`
	SportID    string `form:"sport_id"`
	Location   string `form:"location"`
	Latitude   string `form:"latitude"`
	Longitude  string `form:"longitude"`
	StartTime  string `form:"start_time"`
	EndTime    string `form:"end_time"`
	SkillLevel string `form:"skill_level"`
	Capacity   string `form:"capacity"`
}

// GamePayload is the body of games/create/ and games/{id}/update/.
type GamePayload struct {
	Name       string     `json:"name"`
	SportID    int        `json:"sport_id"`
	Location   string     `json:"location"`
	Latitude   *float64   `json:"latitude"`
	Longitude  *float64   `json:"longitude"`
	StartTime  string     `json:"start_time"`
	EndTime    string     `json:"end_time"`
	SkillLevel SkillLevel `json:"skill_level"`
	Capacity   *int       `json:"capacity"`
}

// FormFromGame prefills an edit form, rendering times as wall clock in loc.
func FormFromGame(g Game, loc *time.Location) GameForm {
	form := GameForm{
		Name:       g.Name,
		SportID:    strconv.Itoa(g.Sport.ID),
		Location:   g.Location,
		StartTime:  g.StartTime.In(loc).Format(DateTimeLocal),
		EndTime:    g.EndTime.In(loc).Format(DateTimeLocal),
		SkillLevel: string(g.SkillLevel),
	}

	if g.Latitude != nil && g.Longitude != nil {
		form.Latitude = strconv.FormatFloat(*g.Latitude, 'f', -1, 64)
		form.Longitude = strconv.FormatFloat(*g.Longitude, 'f', -1, 64)
	}

	if g.Capacity != nil {
		form.Capacity = strconv.Itoa(*g.Capacity)
	}

	return form
}

// Validate checks the form against now and builds the wire payload. Times
// entered without an offset are read as wall clock in loc. On failure the
// returned error is a ValidationErrors.
func (f GameForm) Validate(now time.Time, policy StartPolicy, loc *time.Location) (GamePayload, error) {
	errs := ValidationErrors{}
	payload := GamePayload{
		Name:       strings.TrimSpace(f.Name),
		Location:   strings.TrimSpace(f.Location),
		SkillLevel: SkillLevel(f.SkillLevel),
	}

	if payload.Name == "" {
		errs["name"] = "Game name is required."
	}

	if strings.TrimSpace(f.SportID) == "" {
		errs["sport_id"] = "Select a sport."
	} else if id, err := strconv.Atoi(strings.TrimSpace(f.SportID)); err != nil || id <= 0 {
		errs["sport_id"] = "Select a valid sport."
	} else {
		payload.SportID = id
	}

	if payload.SkillLevel == "" {
		payload.SkillLevel = SkillAll
	} else if !slices.Contains(SkillLevels, payload.SkillLevel) {
		errs["skill_level"] = "Unknown skill level."
	}

	start, startErr := parseFormTime(f.StartTime, loc)
	end, endErr := parseFormTime(f.EndTime, loc)

	switch {
	case strings.TrimSpace(f.StartTime) == "":
		errs["start_time"] = "Start time is required."
	case startErr != nil:
		errs["start_time"] = "Start time is not a valid date and time."
	case policy != StartAny && !start.After(now):
		errs["start_time"] = "Start time must be in the future."
	}

	switch {
	case strings.TrimSpace(f.EndTime) == "":
		errs["end_time"] = "End time is required."
	case endErr != nil:
		errs["end_time"] = "End time is not a valid date and time."
	case startErr == nil && !end.After(start):
		errs["end_time"] = "End time must be after the start time."
	}

	if c := strings.TrimSpace(f.Capacity); c != "" {
		n, err := strconv.Atoi(c)
		if err != nil || n <= 0 {
			errs["capacity"] = "Capacity must be a positive whole number."
		} else {
			payload.Capacity = &n
		}
	}

	lat, lng, ok := parseCoords(f.Latitude, f.Longitude)
	if ok {
		payload.Latitude = &lat
		payload.Longitude = &lng
	}

	if len(errs) > 0 {
		return GamePayload{}, errs
	}

	payload.StartTime = start.UTC().Format(time.RFC3339)
	payload.EndTime = end.UTC().Format(time.RFC3339)

	return payload, nil
}

func parseFormTime(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	if loc == nil {
		loc = time.Local
	}

	return time.ParseInLocation(DateTimeLocal, value, loc)
}

func parseCoords(latValue, lngValue string) (float64, float64, bool) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(latValue), 64)
	if err != nil || lat < -90 || lat > 90 {
		return 0, 0, false
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(lngValue), 64)
	if err != nil || lng < -180 || lng > 180 {
		return 0, 0, false
	}

	return lat, lng, true
}

// ProfileForm is the profile setup form. FavoriteSports is a comma separated
// list of sport ids.
type ProfileForm struct {
	Name           string `form:"name"`
	Bio            string `form:"bio"`
	FavoriteSports string `form:"favorite_sports"`
}

type ProfilePayload struct {
	Name           string `json:"name,omitempty"`
	Bio            string `json:"bio"`
	FavoriteSports []int  `json:"favorite_sports"`
}

func ProfileFormFrom(p Profile) ProfileForm {
	ids := make([]string, 0, len(p.FavoriteSports))
	for _, s := range p.FavoriteSports {
		ids = append(ids, strconv.Itoa(s.ID))
	}

	return ProfileForm{
		Name:           p.Name,
		Bio:            p.Bio,
		FavoriteSports: strings.Join(ids, ", "),
	}
}

func (f ProfileForm) Validate() (ProfilePayload, error) {
	payload := ProfilePayload{
		Name:           strings.TrimSpace(f.Name),
		Bio:            strings.TrimSpace(f.Bio),
		FavoriteSports: []int{},
	}

	for _, part := range strings.Split(f.FavoriteSports, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := strconv.Atoi(part)
		if err != nil || id <= 0 {
			return ProfilePayload{}, ValidationErrors{
				"favorite_sports": "Favorite sports must be a comma separated list of sport IDs.",
			}
		}

		payload.FavoriteSports = append(payload.FavoriteSports, id)
	}

	return payload, nil
}

func (c Credentials) Validate() error {
	errs := ValidationErrors{}

	if strings.TrimSpace(c.Email) == "" {
		errs["email"] = "Email is required."
	}
	if c.Password == "" {
		errs["password"] = "Password is required."
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (s Signup) Validate() error {
	return Credentials{Email: s.Email, Password: s.Password}.Validate()
}
