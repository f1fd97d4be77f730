package memory

import (
	"encoding/json"
	"fmt"
	"os"

	"school-activities-service/internal/entities"
)

// seedRecord is the on-disk shape of one seed entry.
type seedRecord struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// loadSeedFile reads a JSON array of activities replacing the built-in set.
func loadSeedFile(path string) ([]entities.Activity, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var records []seedRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	out := make([]entities.Activity, 0, len(records))
	for _, rec := range records {
		if rec.Name == "" {
			return nil, fmt.Errorf("seed entry without name in %s", path)
		}
		if rec.MaxParticipants <= 0 {
			return nil, fmt.Errorf("seed entry %q: max_participants must be positive", rec.Name)
		}
		out = append(out, entities.Activity{
			Name:            rec.Name,
			Description:     rec.Description,
			Schedule:        rec.Schedule,
			MaxParticipants: rec.MaxParticipants,
			Participants:    append([]string(nil), rec.Participants...),
		})
	}
	return out, nil
}

// defaultSeed returns the built-in activity set.
func defaultSeed() []entities.Activity {
	return []entities.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Competitive basketball practice and games",
			Schedule:        "Mondays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu"},
		},
		{
			Name:            "Swimming Club",
			Description:     "Swimming lessons and competitive swim meets",
			Schedule:        "Tuesdays and Fridays, 3:00 PM - 4:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"sarah@mergington.edu", "lucas@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Explore various art mediums including painting and sculpture",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"emily@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Theater arts, acting, and stage production",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"ava@mergington.edu", "noah@mergington.edu"},
		},
		{
			Name:            "Debate Team",
			Description:     "Develop critical thinking and public speaking skills",
			Schedule:        "Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"mia@mergington.edu"},
		},
		{
			Name:            "Science Olympiad",
			Description:     "Compete in science competitions and conduct experiments",
			Schedule:        "Fridays, 3:00 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"ethan@mergington.edu", "isabella@mergington.edu"},
		},
	}
}
