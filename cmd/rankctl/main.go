// SPDX-License-Identifier: MIT

// Command rankctl counts, ranks, lists and samples combinatorial universes
// from the command line.
//
//	rankctl count comb --n 52 --r 5
//	rankctl unrank perm --n 20 1000000000000
//	rankctl list comb --source Red,Green,Blue --r 2
//	rankctl chunk subsets --n 16 --workers 8
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
