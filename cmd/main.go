// cmd/main.go
package main

import (
	"go-user-api/app"
)

// @title           Go-User API
// @version         1.0
// @description     A user CRUD API built around a request/handler mediation pipeline.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
func main() {
	app.Run()
}
