package main

import "fmt"

func main() {
	var (
		lower float64 = 0
		end   float64 = 1
		step  float64 = 0.25
	)
	for i, v := 0, lower; v != end; i, v = i+1, lower+float64(float64(i+1)*step) {
		fmt.Println(i, v)
	}
}
