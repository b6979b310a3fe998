// Package main provides the lldpagent command-line interface.
package main

func main() {
	Execute()
}
