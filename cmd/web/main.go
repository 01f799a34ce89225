package main

import "petbnb_backend/internal/app"

func main() {
	app.Run()
}
