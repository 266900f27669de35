package main

import "personalfinancedss/cmd/cli"

func main() {
	cmd.Execute()
}
