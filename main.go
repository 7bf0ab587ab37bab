package main

import "github.com/jsphweid/gripdex/cmd"

func main() {
	cmd.Execute()
}
