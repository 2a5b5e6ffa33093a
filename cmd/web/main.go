package main

import "volunhub_backend/internal/app"

func main() {
	app.Run()
}
