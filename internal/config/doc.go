// Package config loads action binding files and host options.
//
// A binding file describes the action sets of an input system together with
// the dispatch policy and mouse settings:
//
//	[dispatch]
//	policy = "highest_priority"
//
//	[mouse]
//	double_click = "400ms"
//	double_click_policy = "replace"
//
//	[[action_set]]
//	name = "ui"
//	priority = 1
//
//	[[action_set.bool]]
//	name = "select"
//	bindings = ["mouse.click.left"]
//
// TOML and YAML files share the same schema and are selected by extension.
// Unknown binding names are reported and skipped so that a file written for
// a newer build still loads. Malformed values (policies, durations) fail the
// load.
//
// Host options (file path, log level, frame interval, hot reload) are read
// from ACTIONMAP_* environment variables with ParseEnv.
package config
