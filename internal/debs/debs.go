package deps

import (
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wodnd0131/kiwes-api/config"
	"github.com/wodnd0131/kiwes-api/internal/db"
	"github.com/wodnd0131/kiwes-api/util/storage"
)

type Dependencies struct {
	DB         *db.DB
	Cloudinary *storage.Cloudinary
}

func New(cfg *config.Config) *Dependencies {
	database, err := db.New(cfg.Dsn)
	if err != nil {
		log.Panicln("failed to connect to database", "error", err)
	}

	cloudinary := storage.NewCloudinary(cfg)

	deps := Dependencies{
		DB:         database,
		Cloudinary: cloudinary,
	}
	return &deps
}

func (d *Dependencies) Pool() *pgxpool.Pool {
	return d.DB.Pool()
}
