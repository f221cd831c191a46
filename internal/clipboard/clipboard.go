package clipboard

import (
	"context"

	"github.com/agilira/go-errors"
)

const ErrCodeNoTool = "CLIP_4001"
const ErrCodeCopyFailed = "CLIP_4002"

func (c *implClipboard) Copy(ctx context.Context, text string) error {
	t, ok := c.find()
	if !ok {
		return errors.New(ErrCodeNoTool, "No clipboard tool available").
			WithContext("os", c.goos)
	}

	if _, err := c.exec.ExecuteWithInput(ctx, text, t.name, t.args...); err != nil {
		return errors.Wrap(err, ErrCodeCopyFailed, "Clipboard copy failed").
			WithContext("tool", t.name)
	}

	c.logger.Debug(ctx, "Copied %d bytes to clipboard via %s", len(text), t.name)
	return nil
}

func (c *implClipboard) find() (tool, bool) {
	for _, t := range tools[c.goos] {
		if c.exec.LookPath(t.name) {
			return t, true
		}
	}
	return tool{}, false
}
