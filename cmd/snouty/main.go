package main

import "github.com/antithesishq/snouty/cmd/snouty/cli"

func main() {
	cli.Execute()
}
