package main

import "github.com/finbridge/statement-ingest/cmd"

func main() {
	cmd.Execute()
}
