// Command gammapath splits an ENSDF decay scheme into per-path files.
package main

import "github.com/katalvlaran/gammapath/cli"

func main() {
	cli.Execute()
}
