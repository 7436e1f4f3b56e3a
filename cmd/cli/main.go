package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/malusolero/login-service/internal/client/api"
	"github.com/malusolero/login-service/internal/client/cli"
)

func main() {

	server := flag.String("s", "http://localhost:8080", "login service base URL")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-s server] <register|login|whoami|update|delete>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	app := cli.NewApp(api.NewClient(*server))

	if err := app.Run(context.Background(), flag.Arg(0)); err != nil {
		log.Fatalf("%v", err)
	}
}
