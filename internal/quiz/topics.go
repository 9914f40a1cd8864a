package quiz

import (
	"math/rand"
	"sort"
)

// Topic describes one quiz category.
type Topic struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

// TopicRandom selects questions across all categories.
const TopicRandom = "random"

var topics = map[string]Topic{
	TopicRandom:    {Name: "Random (All Topics)", Description: "Questions from all available topics", Icon: "🎲"},
	"anatomy":      {Name: "Anatomy", Description: "Questions about human body structure", Icon: "🧠"},
	"biology":      {Name: "Biology", Description: "Questions about living organisms", Icon: "🧬"},
	"pharmacology": {Name: "Pharmacology", Description: "Questions about drugs and medications", Icon: "💊"},
	"history":      {Name: "History", Description: "Questions about historical events and figures", Icon: "📜"},
	"geography":    {Name: "Geography", Description: "Questions about countries, cities, and landmarks", Icon: "🌎"},
	"science":      {Name: "Science", Description: "Questions about scientific discoveries and concepts", Icon: "🔬"},
	"movies":       {Name: "Movies & TV", Description: "Questions about films, shows, and entertainment", Icon: "🎬"},
	"music":        {Name: "Music", Description: "Questions about songs, artists, and music history", Icon: "🎵"},
}

// AllTopics returns the topic table keyed by topic id.
func AllTopics() map[string]Topic {
	out := make(map[string]Topic, len(topics))
	for id, t := range topics {
		out[id] = t
	}
	return out
}

// TopicExists reports whether a topic id is known.
func TopicExists(id string) bool {
	_, ok := topics[id]
	return ok
}

// RandomTopic picks a concrete topic id, never TopicRandom itself.
func RandomTopic(r *rand.Rand) string {
	ids := concreteTopicIDs()
	return ids[r.Intn(len(ids))]
}

// RelatedTopics returns up to count other topic ids for the given base topic.
func RelatedTopics(id string, count int, r *rand.Rand) []string {
	var ids []string
	for _, t := range concreteTopicIDs() {
		if t != id {
			ids = append(ids, t)
		}
	}
	r.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	if count > len(ids) {
		count = len(ids)
	}
	return ids[:count]
}

func concreteTopicIDs() []string {
	ids := make([]string, 0, len(topics)-1)
	for id := range topics {
		if id != TopicRandom {
			ids = append(ids, id)
		}
	}
	// map iteration order is random; keep selection deterministic for a seed
	sort.Strings(ids)
	return ids
}
