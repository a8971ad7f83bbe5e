package main

import "github.com/josephlewis42/cmdexpr/cmd"

func main() {
	cmd.Execute()
}
