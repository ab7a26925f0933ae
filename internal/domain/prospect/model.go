package prospect

// FieldCount is the number of leading CSV columns a prospect row consumes.
const FieldCount = 9

// Prospect is one draft-eligible player's projection.
type Prospect struct {
	Player       string
	Position     string
	ID           string
	DraftYear    int32
	ProjectedSPM float64
	Superstar    float64
	Starter      float64
	RolePlayer   float64
	Bust         float64
}

// Update carries the mutable subset of a prospect. Outcome scores other than
// ProjectedSPM are fixed once a row is written.
type Update struct {
	ID           string
	Player       string
	Position     string
	DraftYear    int32
	ProjectedSPM float64
}

// Apply returns p with the fields of u written over it.
func (u Update) Apply(p Prospect) Prospect {
	p.Player = u.Player
	p.Position = u.Position
	p.DraftYear = u.DraftYear
	p.ProjectedSPM = u.ProjectedSPM
	return p
}
