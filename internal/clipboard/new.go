package clipboard

import (
	"runtime"

	"github.com/nguyentantai21042004/script-refine/internal/logger"
	"github.com/nguyentantai21042004/script-refine/pkg/executor"
)

type tool struct {
	name string
	args []string
}

// tools lists the clipboard commands tried per OS, in order
var tools = map[string][]tool{
	"darwin":  {{name: "pbcopy"}},
	"windows": {{name: "clip.exe"}},
	"linux": {
		{name: "wl-copy"},
		{name: "xclip", args: []string{"-selection", "clipboard"}},
		{name: "xsel", args: []string{"--clipboard", "--input"}},
		{name: "clip.exe"},
	},
}

type implClipboard struct {
	exec   executor.Executor
	goos   string
	logger logger.Logger
}

func New(exec executor.Executor, log logger.Logger) Clipboard {
	return &implClipboard{
		exec:   exec,
		goos:   runtime.GOOS,
		logger: log,
	}
}
