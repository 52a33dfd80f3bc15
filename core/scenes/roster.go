package scenes

import "strings"

// Actor is a configured character eligible to appear in a scene.
type Actor struct {
	ID string `json:"id" yaml:"id"`
	// Name is the display name, used for name resolution and mention
	// detection.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// FirstName returns the first word of the display name.
func (a Actor) FirstName() string {
	fields := strings.Fields(a.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Roster is the ordered list of actors selected for a conversation. The
// order is the seating order.
type Roster []Actor

func NewRoster(ids ...string) Roster {
	roster := make(Roster, 0, len(ids))
	for _, id := range ids {
		roster = append(roster, Actor{ID: id})
	}
	return roster
}

func (r Roster) IDs() []string {
	ids := make([]string, 0, len(r))
	for _, actor := range r {
		ids = append(ids, actor.ID)
	}
	return ids
}

// Index returns the seating index of the actor, or -1.
func (r Roster) Index(id string) int {
	for i, actor := range r {
		if actor.ID == id {
			return i
		}
	}
	return -1
}

func (r Roster) Contains(id string) bool { return r.Index(id) >= 0 }

// Actor returns the actor with the given id.
func (r Roster) Actor(id string) (Actor, bool) {
	if i := r.Index(id); i >= 0 {
		return r[i], true
	}
	return Actor{}, false
}

// Resolve maps a name as written by the model onto a roster id. It matches,
// case-insensitively and in this order, the id, the display name and the
// first name of the display name.
func (r Roster) Resolve(name string) (string, bool) {
	key := normalizeName(name)
	if key == "" {
		return "", false
	}

	for _, actor := range r {
		if normalizeName(actor.ID) == key {
			return actor.ID, true
		}
	}
	for _, actor := range r {
		if actor.Name != "" && normalizeName(actor.Name) == key {
			return actor.ID, true
		}
	}
	for _, actor := range r {
		if first := actor.FirstName(); first != "" && normalizeName(first) == key {
			return actor.ID, true
		}
	}
	return "", false
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Join(strings.FieldsFunc(name, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	}), "_")
}
