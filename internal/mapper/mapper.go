// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"school-activities-service/internal/api"
	"school-activities-service/internal/entities"
)

// ToAPIActivity maps entities.Activity to its transport view.
func ToAPIActivity(a entities.Activity) api.ActivityView {
	return api.ActivityView{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    append([]string{}, a.Participants...),
	}
}

// ToAPIDirectory maps the registry listing to the name-keyed response body.
func ToAPIDirectory(list []entities.Activity) api.Directory {
	out := make(api.Directory, 0, len(list))
	for _, a := range list {
		out = append(out, api.DirectoryEntry{
			Name:     a.Name,
			Activity: ToAPIActivity(a),
		})
	}
	return out
}
