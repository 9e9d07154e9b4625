package main

import "github.com/castkeep/castkeep/cmd"

// @title           Castkeep API
// @version         1.0.0
// @description     A podcast content management system with admin views, a JSON API, and RSS feeds
// @contact.name    API Support
// @contact.url     https://github.com/castkeep/castkeep
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
