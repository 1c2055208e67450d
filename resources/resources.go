// Package resources bundles the generated per-locale currency tables.
//
// Files under currencies/ are produced by tools/cldrgen and must not be edited by hand.
package resources

import "embed"

// Dir is the directory inside FS that holds one <locale>.json file per locale
const Dir = "currencies"

//go:embed currencies/*.json
var FS embed.FS
