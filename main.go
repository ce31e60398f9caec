package main

import "github.com/bookora/bookora_backend/cmd"

func main() {
	cmd.Execute()
}
