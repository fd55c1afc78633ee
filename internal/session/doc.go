// Package session builds the catalog of tmuxp sessions shown in rofi.
//
// # Overview
//
// A Catalog scans one workspace directory. Every .yml, .yaml and .json file
// in it is read with the tmuxp package, expanded, and checked for a
// session_name. The result maps each session name to its file:
//
//	~/.config/tmuxp/work.yaml   session_name: work    -> "work"
//	~/.config/tmuxp/blog.json   "session_name": "blog" -> "blog"
//
// # Skipped files
//
// Loading a file yields a Result tagged with an Outcome:
//   - Loaded: the session is added to the catalog
//   - Invalid: logged at WARN as "Invalid config", skipped
//   - Failed: logged at ERROR as "Error loading config", skipped
//
// One bad file never stops the scan. The catalog is rebuilt on every run and
// nothing is cached.
package session
