package main

import "itac-api/cmd"

func main() {
	cmd.Execute()
}
