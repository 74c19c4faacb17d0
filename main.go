package main

import (
	"os"

	"github.com/designspec/designspec-web/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
