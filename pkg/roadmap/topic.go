package roadmap

import "slices"

// Level is the difficulty classification of a topic.
type Level string

// Recognized levels. Any other value, including the empty string, is an
// unrecognized level.
const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
)

// Known reports whether l is one of the recognized levels.
func (l Level) Known() bool {
	switch l {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// Topic is a single roadmap entry.
type Topic struct {
	Name         string
	Level        Level
	Prerequisite string // empty when the topic has none
	EstTime      string // free-form estimate such as "2 weeks"; optional
}

// HasPrerequisite reports whether the topic names a prerequisite.
func (t Topic) HasPrerequisite() bool {
	return t.Prerequisite != ""
}

// Roadmap is an ordered, name-unique collection of topics.
// The zero value is an empty roadmap.
type Roadmap struct {
	// Topics in source order.
	Topics []Topic

	// Duplicates lists topic names that appeared more than once in the
	// source, in order of their first repetition.
	Duplicates []string

	index map[string]int
}

// New builds a roadmap from topics, collapsing repeated names the same way
// the loader does.
func New(topics ...Topic) *Roadmap {
	rm := &Roadmap{}
	for _, t := range topics {
		rm.add(t)
	}
	return rm
}

func (rm *Roadmap) add(t Topic) {
	if rm.index == nil {
		rm.index = make(map[string]int)
	}
	if i, ok := rm.index[t.Name]; ok {
		rm.Topics[i] = t
		if !slices.Contains(rm.Duplicates, t.Name) {
			rm.Duplicates = append(rm.Duplicates, t.Name)
		}
		return
	}
	rm.index[t.Name] = len(rm.Topics)
	rm.Topics = append(rm.Topics, t)
}

// Len returns the number of unique topics.
func (rm *Roadmap) Len() int {
	if rm == nil {
		return 0
	}
	return len(rm.Topics)
}

// Topic returns the topic with the given name.
func (rm *Roadmap) Topic(name string) (Topic, bool) {
	if rm == nil {
		return Topic{}, false
	}
	i, ok := rm.index[name]
	if !ok {
		return Topic{}, false
	}
	return rm.Topics[i], true
}

// Dangling returns the topics whose prerequisite names no topic in the
// roadmap, in source order.
func (rm *Roadmap) Dangling() []Topic {
	if rm == nil {
		return nil
	}
	var out []Topic
	for _, t := range rm.Topics {
		if !t.HasPrerequisite() {
			continue
		}
		if _, ok := rm.index[t.Prerequisite]; !ok {
			out = append(out, t)
		}
	}
	return out
}
