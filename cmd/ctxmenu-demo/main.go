// Package main provides the ctxmenu demo binary.
package main

func main() {
	Execute()
}
