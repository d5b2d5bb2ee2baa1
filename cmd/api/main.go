package main

import (
	_ "pazes_checkout/docs"
	"pazes_checkout/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Pazes Checkout API
// @version         1.0
// @description     Checkout and payment reconciliation for the "Fazendo as Pazes com o TDAH" course (Asaas gateway, Sheets ledger).
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
