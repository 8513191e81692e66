package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"

	"github.com/hustlib/lending-service/app"
	"github.com/hustlib/lending-service/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("load envs from .env ", err)
	}
	cfg := config.NewConfig(
		config.WithWriteTimeout(time.Minute),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal(err)
	}
}
