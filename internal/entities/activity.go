// Package entities contains core business entities.
package entities

// Activity is an extracurricular offering with its participant roster.
// Name is the registry key; it is case- and whitespace-sensitive.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// HasParticipant reports whether the email is already on the roster.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}
