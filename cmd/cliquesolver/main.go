// Command cliquesolver finds a maximum clique in a DIMACS-format graph file.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:]))
}
