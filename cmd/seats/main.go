// Command seats runs seat layouts to their fixed point and prints the number
// of occupied seats under each rule.
//
//	seats [flags] layout.txt [more.txt.zst ...]
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
