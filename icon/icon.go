// Package icon picks a display icon for a movie from keywords in its name.
package icon

import "strings"

const Default = "🎬"

type rule struct {
	keywords []string
	icon     string
}

// Rules are checked in order; the first keyword found in the name wins.
var rules = []rule{
	{keywords: []string{"prison", "escape", "jail"}, icon: "🔒"},
	{keywords: []string{"family", "boss", "godfather", "mafia"}, icon: "👔"},
	{keywords: []string{"hero", "masked", "knight"}, icon: "🦸"},
	{keywords: []string{"space", "star", "galaxy", "planet"}, icon: "🚀"},
	{keywords: []string{"dream", "sleep", "mind"}, icon: "💭"},
	{keywords: []string{"war", "battle", "soldier"}, icon: "⚔️"},
	{keywords: []string{"love", "heart", "romance"}, icon: "❤️"},
	{keywords: []string{"laugh", "funny", "comedy"}, icon: "😂"},
	{keywords: []string{"speed", "chase", "race", "car"}, icon: "🏎️"},
	{keywords: []string{"ocean", "sea", "pirate", "ship"}, icon: "🏴‍☠️"},
	{keywords: []string{"ghost", "haunt", "night"}, icon: "👻"},
}

// ForMovie returns the icon for movieName, or Default when nothing matches.
func ForMovie(movieName string) string {
	name := strings.ToLower(movieName)
	for _, r := range rules {
		for _, k := range r.keywords {
			if strings.Contains(name, k) {
				return r.icon
			}
		}
	}
	return Default
}
