package clipboard

import "context"

// Clipboard places text on the system clipboard from the command line
type Clipboard interface {
	Copy(ctx context.Context, text string) error
}
