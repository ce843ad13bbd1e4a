package tournament

import "sort"

// Record holds the three counters kept per player.
type Record struct {
	SeekerWins    int `json:"seekerWins"`
	HiderSurvived int `json:"hiderSurvived"`
	GamesPlayed   int `json:"gamesPlayed"`
}

// Points is the ranking score: wins as seeker plus survivals as hider.
func (r Record) Points() int {
	return r.SeekerWins + r.HiderSurvived
}

// Add returns the counter-wise sum of r and o.
func (r Record) Add(o Record) Record {
	return Record{
		SeekerWins:    r.SeekerWins + o.SeekerWins,
		HiderSurvived: r.HiderSurvived + o.HiderSurvived,
		GamesPlayed:   r.GamesPlayed + o.GamesPlayed,
	}
}

// Standings maps player identity to its record.
type Standings map[string]Record

// NewStandings creates zeroed records for the given players.
func NewStandings(ids []string) Standings {
	s := make(Standings, len(ids))
	for _, id := range ids {
		s[id] = Record{}
	}
	return s
}

// Clone returns an independent copy.
func (s Standings) Clone() Standings {
	c := make(Standings, len(s))
	for id, r := range s {
		c[id] = r
	}
	return c
}

// Merge returns a new table where every record of other is added to the
// matching record of s. Players only present in s are kept unchanged.
func (s Standings) Merge(other Standings) Standings {
	out := s.Clone()
	for id, r := range other {
		out[id] = out[id].Add(r)
	}
	return out
}

// Standing is one row of a sorted standings table.
type Standing struct {
	ID string
	Record
}

// Sorted returns the rows ordered by points descending, then by identity.
func (s Standings) Sorted() []Standing {
	rows := make([]Standing, 0, len(s))
	for id, r := range s {
		rows = append(rows, Standing{ID: id, Record: r})
	}
	sort.Slice(rows, func(i, j int) bool {
		pi, pj := rows[i].Points(), rows[j].Points()
		if pi != pj {
			return pi > pj
		}
		return rows[i].ID < rows[j].ID
	})
	return rows
}
