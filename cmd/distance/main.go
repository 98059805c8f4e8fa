// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"github.com/z5labs/tour/cli"
	"github.com/z5labs/tour/distance"
)

const name = "distance"

func options() []cli.Option {
	return []cli.Option{
		cli.Short("Add a kilometre value to a mile value converted to kilometres"),
		cli.Defaults(distance.Defaults()),
	}
}

func main() {
	cli.Main(name, distance.Builder, options()...)
}
