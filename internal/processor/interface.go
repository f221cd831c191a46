package processor

import "context"

// Processor refines transcript files dropped into the input folder
type Processor interface {
	// Process refines one transcript file, writes the .md and .docx outputs
	// and archives the source.
	Process(ctx context.Context, transcriptPath string) error
	// ProcessBacklog processes transcripts already waiting in the input folder.
	ProcessBacklog(ctx context.Context) error
}
