package main

import "github.com/structcalc/gobeam/cmd"

func main() {
	cmd.Execute()
}
