package main

import (
	api "Socialnet"
)

// @title Socialnet API
// @version 1.0
// @description Users, follows, posts, comments and reactions
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Provide a valid JWT as: Bearer <token>
func main() {
	api.Run()
}
