package dropdown

import "strings"

// Profile selects how keyboard navigation relates to the selection.
type Profile int

const (
	// ProfileHighlight moves a highlight with the arrow keys and confirms it
	// with Enter. Escape discards the highlight.
	ProfileHighlight Profile = iota

	// ProfileDirect moves the selection itself with the arrow keys. Focus
	// follows onto the option element and Enter on it closes the list.
	ProfileDirect
)

func (p Profile) String() string {
	switch p {
	case ProfileDirect:
		return "direct"
	default:
		return "highlight"
	}
}

// ParseProfile maps a profile name to a Profile. The empty string selects
// ProfileHighlight.
func ParseProfile(name string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "highlight":
		return ProfileHighlight, nil
	case "direct":
		return ProfileDirect, nil
	}
	return ProfileHighlight, &UnknownProfileError{Name: name}
}
