package data

import "github.com/jackc/pgx/v4/pgxpool"

type Models struct {
	Users UserModel
}

func NewModel(db *pgxpool.Pool) Models {
	return Models{
		Users: UserModel{DB: db},
	}
}
