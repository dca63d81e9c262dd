// stepwise replays instrumented algorithm runs in a terminal.
//
// Usage:
//
//	stepwise sort <bubble|selection|insertion|merge|heap> [5,3,8,1] [--random N --seed S]
//	stepwise traverse <bfs|dfs|dijkstra> [--start A] [--graph file.yaml | --preset cycle:6]
//	stepwise mst <prim|kruskal> [--graph file.yaml | --preset random:8] [--exhaustive]
//	stepwise graph [--graph file.yaml | --preset complete:4]
//
// Press Ctrl-C to abort a run; the partial outcome is still printed.
package main

import (
	"fmt"
	"os"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
