package main

import (
	"github.com/soil-insights/soilboard/cmd/app"
)

func main() {
	app.Run()
}
