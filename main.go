package main

import "valuefmt/cmd"

func main() {
	cmd.Execute()
}
