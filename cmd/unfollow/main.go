// Command unfollow lists the accounts you follow that do not follow you back
// and snapshots them, with your profile stats, to JSON files.
package main

import (
	"os"
)

func main() {
	os.Exit(execute(os.Args[1:]))
}
