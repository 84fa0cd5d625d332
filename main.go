package main

import "github.com/seanly/ldtp2/cmd"

func main() {
	cmd.Execute()
}
