package main

import "dailyroll/cmd/dailyroll-cli/cmd"

func main() {
	cmd.Execute()
}
