// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package main

import "github.com/buddy-go/buddy/cmd/buddy/cmd"

func main() {
	cmd.Execute()
}
