package main

import (
	_ "flight_price_api/docs"
	"flight_price_api/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Flight Price API
// @version         1.0
// @description     Resolves flight prices from a live search provider with a deterministic estimation fallback.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
