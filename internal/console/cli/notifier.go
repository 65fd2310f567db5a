package cli

import (
	"context"
	"fmt"
	"io"
)

// termNotifier prints notifications as styled lines.
type termNotifier struct {
	w io.Writer
}

func (n termNotifier) Success(_ context.Context, msg string) {
	fmt.Fprintln(n.w, successStyle.Render("✓ "+msg))
}

func (n termNotifier) Error(_ context.Context, msg string) {
	fmt.Fprintln(n.w, errorStyle.Render("✗ "+msg))
}
