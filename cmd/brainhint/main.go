// Package main provides the brainhint command-line client.
package main

func main() {
	Execute()
}
