package main

import (
	"log"

	"github.com/Brutus5000/faf-replay/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
