package repo

type ProfileRow struct {
	Kind  string `db:"kind"`
	Phone string `db:"phone"`
	Data  []byte `db:"data"`
}
