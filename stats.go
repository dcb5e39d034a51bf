package deltalog

// Stats holds a tally of the changes found by a single comparison
type Stats struct {
	Added   int `json:"added,omitempty"`   // count of Added entries
	Updated int `json:"updated,omitempty"` // count of Updated entries
	Deleted int `json:"deleted,omitempty"` // count of Deleted entries
}

// Total returns the number of changelog entries the tally covers
func (s Stats) Total() int {
	return s.Added + s.Updated + s.Deleted
}

// tally counts changes from a finished changelog, replacing any prior counts
func (s *Stats) tally(cl Changelog) {
	*s = Stats{}
	for _, e := range cl {
		switch e.Note {
		case NoteAdded:
			s.Added++
		case NoteUpdated:
			s.Updated++
		case NoteDeleted:
			s.Deleted++
		}
	}
}
