//go:build tools

package tools

// This file tracks the CLI tools the repository relies on.
// It is not compiled into any binary.
//
// - github.com/matryer/moq: regenerates the *_mock_test.go files (go generate ./...)
// - github.com/pressly/goose/v3/cmd/goose: ad-hoc migration authoring; cmd/migrate applies them
