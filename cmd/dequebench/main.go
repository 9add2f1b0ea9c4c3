package main

import (
	"flag"
	"log"

	"github.com/joykm/deque-bag-adt/context"
	"github.com/joykm/deque-bag-adt/workload"
)

func main() {
	iniPath := flag.String("config", "config.ini", "path of the workload config")
	flag.Parse()

	ctx, err := context.NewContext(*iniPath)
	if err != nil {
		log.Fatal("Error loading config:", err)
	}
	reports, err := workload.NewRunner(ctx).RunConfigured()
	for _, report := range reports {
		log.Printf("%v", report)
	}
	if err != nil {
		log.Fatal(err)
	}
	ctx.TimeCounter.Print()
}
