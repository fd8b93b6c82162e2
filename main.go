package main

import "github.com/JamshedBosch/Requirements-import-export-check-compact/cmd"

func main() {
	cmd.Execute()
}
