package main

import "github.com/KaramelBytes/labloom-cli/cmd"

func main() {
	cmd.Execute()
}
