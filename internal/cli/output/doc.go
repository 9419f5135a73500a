// Package output renders skillshare-cli command results.
//
// Command handlers hand their result values to a Formatter picked from
// the --output flag (or config default):
//
//   - table.go: tabular rendering with wide mode and cell truncation
//   - json.go: indented JSON for scripting
//   - yaml.go: YAML via gopkg.in/yaml.v3
//   - spinner.go: progress animation for network operations
//
// Table rendering is reflection based: slices of structs become one row
// per element, single structs become a FIELD/VALUE listing. Struct fields
// opt out with `table:"-"` and mark verbose columns with `table:"wide"`.
package output
