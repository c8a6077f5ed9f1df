package main

import "fmt"

func main() {
	var (
		lower uint8 = 5
		end   uint8 = 255
		step  int8  = -1
	)
	for v := lower; v != end; v += uint8(step) {
		fmt.Println(v)
	}
}
