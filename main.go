package main

import (
	"os"

	"github.com/kaizenlab/fishbone-assistant/cmd"
	_ "github.com/kaizenlab/fishbone-assistant/version" // Import for version info
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
