package main

import "fmt"

func main() {
	var (
		lower int = 1
		end   int = 73
		step  int = 3
	)
	for v := lower; v != end; v += step {
		fmt.Println(v)
	}
}
