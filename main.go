package main

import "github.com/hance08/moneymgr/cmd"

func main() {
	cmd.Execute()
}
