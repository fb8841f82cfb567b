package main

import "stonex_server/cmd"

func main() {
	cmd.Execute()
}
