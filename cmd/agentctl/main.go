package main

import "github.com/vfg2006/transactions-agent-api/internal/cli"

func main() {
	cli.Execute()
}
