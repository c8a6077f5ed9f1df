package main

import "fmt"

func main() {
	var (
		lower int8 = -100
		end   int8 = -106
		step  int8 = 50
	)
	for i, v := 0, lower; v != end; i, v = i+1, v+step {
		fmt.Println(i, v)
	}
}
