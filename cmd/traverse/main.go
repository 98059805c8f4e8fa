// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"github.com/z5labs/tour/cli"
	"github.com/z5labs/tour/traverse"
)

const name = "traverse"

func options() []cli.Option {
	return []cli.Option{
		cli.Short("Walk a sequence with seven equivalent traversal mechanisms"),
		cli.Defaults(traverse.Defaults()),
	}
}

func main() {
	cli.Main(name, traverse.Builder, options()...)
}
