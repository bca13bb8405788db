package main

import "taxi-service/internal/cli"

func main() {
	cli.Execute()
}
