package main

import "github.com/locsift/locsift/cmd"

func main() {
	cmd.Execute()
}
