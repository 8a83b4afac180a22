// Command gridshow measures, renders and previews column grid layouts.
package main

import "fixedgrid/internal/cli"

func main() {
	cli.Execute()
}
