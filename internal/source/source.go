package source

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// BuiltinURI selects the guideline text compiled into the binary.
const BuiltinURI = "builtin:"

// Fetch resolves a source URI and returns the guideline text it names.
// Supported schemes: http://, https:// (network fetch via the client),
// file:// or a bare filesystem path (local read), and builtin: (embedded
// fallback). The text is copied verbatim in all cases.
func Fetch(ctx context.Context, client *Client, uri string) (string, error) {
	switch {
	case uri == "" || uri == BuiltinURI:
		return Builtin(), nil
	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		return client.Get(ctx, uri)
	case strings.HasPrefix(uri, "file://"):
		return readLocal(strings.TrimPrefix(uri, "file://"))
	default:
		return readLocal(uri)
	}
}

func readLocal(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read source file: %w", err)
	}
	return string(b), nil
}
