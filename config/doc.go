// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package config provides very easy to use and extensible configuration management capabilities.
//
// A [Source] writes key value pairs into a [Store]. [Read] applies a list of
// sources, in order, to a single in-memory store so later sources override
// earlier ones. The resulting [Manager] decodes everything into a plain Go
// struct using `config` struct tags:
//
//	type Config struct {
//	    Values []int `config:"values"`
//	    Labels bool  `config:"labels"`
//	}
//
//	m, err := config.Read(
//	    config.Map{"values": []int{1, 2, 3}},
//	    config.FromYaml(config.NewFileReader(os.DirFS("."), "traverse.yaml")),
//	    config.Overrides([]string{"labels=true"}),
//	)
//	if err != nil {
//	    return err
//	}
//
//	var cfg Config
//	err = m.Unmarshal(&cfg)
package config
