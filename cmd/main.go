package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/saeidalz13/battleship-console/api"
	"github.com/saeidalz13/battleship-console/db"
	"github.com/saeidalz13/battleship-console/db/sqlc"
)

func main() {
	if os.Getenv("STAGE") != api.StageProd {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("no .env file loaded:", err)
		}
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = api.StageDev
	}
	if stage != api.StageDev && stage != api.StageProd {
		panic("stage must be either dev or prod")
	}

	opts := []api.Option{api.WithStage(stage)}

	// Analytics are optional; without a database the game runs as usual.
	if psqlUrl := os.Getenv("DATABASE_URL"); psqlUrl != "" {
		conn := db.MustConnectToDb(psqlUrl, os.Getenv("MIGRATION_DIR"))
		defer conn.Close()
		opts = append(opts, api.WithQuerier(sqlc.New(conn)))
	}

	rp := api.NewRequestProcessor(os.Stdin, os.Stdout, opts...)
	if err := rp.Serve(context.Background()); err != nil {
		log.Fatalln(err)
	}
}
