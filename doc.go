// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package tour runs small, self contained programs which each demonstrate
// one language feature.
//
// Every program follows the same shape:
//
//   - its behaviour is fully described by a config struct with defaults
//   - an [AppBuilder] turns that config into an [App]
//   - [Run] reads the config sources, builds the [App] and runs it
//
// The cli package wires [Run] to a cobra command so each program under cmd/
// is only a few lines long:
//
//	func main() {
//	    cli.Main("traverse", traverse.Builder, cli.Defaults(traverse.Defaults()))
//	}
package tour
