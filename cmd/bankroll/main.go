package main

import "github.com/bankrollhq/bankroll/internal/cli"

func main() {
	cli.Execute()
}
