package main

import (
	"os"

	"github.com/storenav/storenav/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
