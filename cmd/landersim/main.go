// Command landersim runs the lander simulation.
package main

import "github.com/sarchlab/landersim/cmd"

func main() {
	cmd.Execute()
}
