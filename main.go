// Lace is a toolchain for the LC3 assembly language; this binary is its
// interactive debugger front end.
package main

import (
	"os"

	"src.lace.dev/pkg/debugger"
	"src.lace.dev/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		&debugger.Program{}))
}
