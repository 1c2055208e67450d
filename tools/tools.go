//go:build tools
// +build tools

// Package tools pins the versions of the binaries used by go:generate and the lint step.
package tools

import (
	_ "github.com/client9/misspell/cmd/misspell"
	_ "github.com/golang/mock/mockgen"
	_ "golang.org/x/tools/cmd/goimports"
)
