package main

import "debt-payoff/cmd"

func main() {
	cmd.Execute()
}
