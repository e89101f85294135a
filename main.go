package main

import "github.com/KaramelBytes/convertsearch/cmd"

func main() {
	cmd.Execute()
}
