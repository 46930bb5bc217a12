package main

import "fitness_backend/internal/app"

func main() {
	app.Run()
}
