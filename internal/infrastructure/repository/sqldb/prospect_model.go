package sqldb

type prospectTableModel struct {
	Player       string  `db:"player"`
	Position     string  `db:"position"`
	ID           string  `db:"id"`
	DraftYear    int32   `db:"draft_year"`
	ProjectedSPM float64 `db:"projected_spm"`
	Superstar    float64 `db:"superstar"`
	Starter      float64 `db:"starter"`
	RolePlayer   float64 `db:"role_player"`
	Bust         float64 `db:"bust"`
}
