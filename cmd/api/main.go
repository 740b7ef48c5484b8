package main

import (
	"coinwatch/cmd"
	"log"

	_ "github.com/lib/pq"
)

func main() {
	apiHandler, syncScheduler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler, syncScheduler)

	if err := syncScheduler.Start(); err != nil {
		log.Fatal(err)
	}

	if err := apiHandler.StartApi(apiHandler.Cfg.Port); err != nil {
		log.Fatal(err)
	}
}
