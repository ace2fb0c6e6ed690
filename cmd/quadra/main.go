// SPDX-License-Identifier: MIT

// Command quadra integrates expressions from the command line.
//
//	quadra integrate --expr "16 - x**2 - 2*y**2" --vars x,y --lo 0,0 --hi 2,2 --precision 3
//	quadra antiderivative --expr "exp(x)" --base -10 --bounds -1,0.1,1 --at 0,0.5
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
