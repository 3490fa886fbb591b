package main

import "github.com/naufalhakim/hr-management/cmd"

func main() {
	cmd.Execute()
}
