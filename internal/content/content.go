// Package content holds the static portfolio data: profile, skills,
// experience records, education, awards and external action targets.
//
// Everything here is defined once at process start and never mutated.
// Accessors return copies so callers cannot alter the store.
package content

import (
	"errors"
	"fmt"
)

// ErrUnknownExperience is returned when an id does not match any record.
var ErrUnknownExperience = errors.New("unknown experience")

// Experience is one job role with an ordered list of responsibilities.
type Experience struct {
	ID               int
	Title            string
	Company          string
	Duration         string
	Responsibilities []string
}

// Entry is a title/subtitle pair used by the resume lists.
type Entry struct {
	Title    string
	Subtitle string
}

// ProfileInfo is the home screen header content.
type ProfileInfo struct {
	Name     string
	Headline string
	Tagline  string
	Bio      string
}

var profile = ProfileInfo{
	Name:     "Ashish Tyagi",
	Headline: "Senior Technical Lead",
	Tagline:  "8+ Years • Fintech • Jetpack Compose",
	Bio: "Android Application Engineer with experience of building scalable, high performance fintech apps." +
		"Expert in Jetpack Compose, Kotlin, Coroutines, and modular architecture. Strong leader who remains deeply technical," +
		"driving UI migrations, performance optimization, and crash reduction.",
}

var experiences = []Experience{
	{
		ID:       1001,
		Title:    "Senior Technical Lead",
		Company:  "Paytm / Paytm Money",
		Duration: "Feb 2020 – Apr 2025",
		Responsibilities: []string{
			"Led end-to-end migration of Paytm Money app to Jetpack Compose, reducing UI development time by 30%.",
			"Designed scalable Compose UI patterns and reusable components across trading modules.",
			"Built and optimized WebSocket infrastructure for real-time market feeds, reducing latency by 30%.",
			"Improved app stability by reducing crash rate by 35–45% using Crashlytics-driven RCA.",
			"Mentored and led a team of 5+ Android engineers, improving team velocity by 25%.",
			"Collaborated with product, backend, QA, and compliance teams to ship secure fintech features.",
			"Introduced AI-assisted development workflows using GitHub Copilot and LLM tools.",
		},
	},
	{
		ID:       1002,
		Title:    "Associate IT Consultant",
		Company:  "ITC Infotech",
		Duration: "Feb 2020 – Apr 2025",
		Responsibilities: []string{
			"Designed and developed Android applications across publishing and digital advisory domains.",
			"Delivered apps like Glassboxx, uLibrary, and Bayer Digital Farming supporting global users.",
			"Refactored legacy codebases into modular architectures, reducing development time by 20–25%.",
			"Built reusable Android libraries (Weather, Field Profile, Cropping Calendar, P&L modules).",
			"Led and mentored a team of two developers, enabling independent delivery.",
			"Collaborated with product teams to reduce requirement ambiguity by 30%.",
			"Improved API reliability by working closely with backend microservices teams.",
			"Performed production RCA and debugging, reducing defect resolution time by ~35%.",
		},
	},
}

var skills = []string{
	"AI Assisted Dev", "Kotlin", "Jetpack Compose", "Coroutines", "Flow", "MVVM",
	"WebSockets", "Clean Architecture", "Performance Optimization", "Crash Analytics", "CI/CD",
}

var education = []Entry{
	{Title: "PG Diploma in Mobile Computing", Subtitle: "CDAC, Bengaluru • 2016"},
	{Title: "B.Tech Computer Science", Subtitle: "Bharat Institute of Technology, Meerut • 2015"},
}

var awards = []Entry{
	{Title: "Rockstar", Subtitle: "Paytm Money • 2021, 2024"},
	{Title: "Hall of Fame", Subtitle: "Paytm Money • 2024"},
	{Title: "Best Associate IT Consultant", Subtitle: "ITC Infotech • 2018"},
}

func init() {
	if err := validate(experiences); err != nil {
		panic(err)
	}
}

// validate checks that experience ids are unique.
func validate(list []Experience) error {
	seen := make(map[int]struct{}, len(list))
	for _, e := range list {
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("content: duplicate experience id %d", e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}

// Profile returns the home screen header content.
func Profile() ProfileInfo {
	return profile
}

// Experiences returns the experience records in their defined order.
func Experiences() []Experience {
	out := make([]Experience, len(experiences))
	for i, e := range experiences {
		out[i] = e.clone()
	}
	return out
}

// ExperienceByID looks up a record by id.
func ExperienceByID(id int) (Experience, error) {
	for _, e := range experiences {
		if e.ID == id {
			return e.clone(), nil
		}
	}
	return Experience{}, fmt.Errorf("%w: %d", ErrUnknownExperience, id)
}

// Skills returns the skill labels in display order.
func Skills() []string {
	return append([]string(nil), skills...)
}

// Education returns the education entries in literal order.
func Education() []Entry {
	return append([]Entry(nil), education...)
}

// Awards returns the award entries in literal order.
func Awards() []Entry {
	return append([]Entry(nil), awards...)
}

func (e Experience) clone() Experience {
	e.Responsibilities = append([]string(nil), e.Responsibilities...)
	return e
}
