/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>

*/
package main

import "github.com/redneckbeard/rangex/cmd"

func main() {
	cmd.Execute()
}
