// Package tmuxp reads tmuxp workspace files.
//
// # Reading
//
// Workspace files are YAML or JSON mappings. ReadFile parses them in safe
// mode: the document is decoded into a yaml.Node tree first, and any node
// carrying a tag outside the YAML core schema (for example
// !!python/object/apply) fails the read with a ConstructorError. Nothing but
// plain maps, slices and scalars is ever built.
//
// # Expansion
//
// Expander rewrites string values after parsing, the way tmuxp does before
// loading a workspace:
//   - a leading ~ becomes $HOME
//   - $NAME and ${NAME} become the variable's value
//
// Placeholders naming unset variables are kept verbatim by default
// (UnsetKeep) or dropped (UnsetEmpty).
//
// # Finding workspaces
//
// WorkspaceDir follows tmuxp's lookup order for the workspace directory and
// ConfigsInDir lists the .yml, .yaml and .json files inside it.
package tmuxp
