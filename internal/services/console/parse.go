package console

import "strings"

// ParsePlayerList extracts player names from server output of the form
// "There are 3 whitelisted players: Steve, Alex, Notch". The names follow
// the first colon, comma-separated. Malformed output parses to an empty
// list rather than failing; callers keep the raw text alongside.
func ParsePlayerList(raw string) []string {
	_, rest, found := strings.Cut(raw, ":")
	if !found {
		return []string{}
	}

	players := []string{}
	for _, name := range strings.Split(rest, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			players = append(players, name)
		}
	}
	return players
}
