// Command playctl is the CLI client for playlistd.
package main

import "os"

func main() {
	NewCLI().Run(os.Args)
}
