package main

import "edurec_backend/internal/app"

func main() {
	app.Run()
}
