// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"github.com/z5labs/tour/cli"
	"github.com/z5labs/tour/display"
)

const name = "display"

func options() []cli.Option {
	return []cli.Option{
		cli.Short("Print containers with a generic printer and its specializations"),
		cli.Defaults(display.Defaults()),
	}
}

func main() {
	cli.Main(name, display.Builder, options()...)
}
