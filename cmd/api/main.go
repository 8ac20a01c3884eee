package main

import (
	"github.com/gbzindabb123-ops/mlb2/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	routes.Run()
}
