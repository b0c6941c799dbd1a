package model

// DownloadRequest is the resolved input of a single fetch run
type DownloadRequest struct {
	Competition    string // Competition identifier, e.g. "titanic"
	Dest           string // Destination directory
	SkipExtraction bool   // Do not expand *.zip files in Dest
}

// Acquisition represents which strategy satisfied the request
type Acquisition struct {
	Strategy string   // Name of the satisfying strategy
	Files    []string // Paths written into the destination directory
}

// Expansion represents the result of extracting archives in the destination directory
type Expansion struct {
	Archives []string // Archives that were extracted
	Files    []string // Extracted entry names, relative to the destination
	Size     int64    // Total uncompressed size in bytes
}

// FetchReport is the outcome of a complete run
type FetchReport struct {
	Dest        string
	Acquisition *Acquisition
	Expansion   *Expansion // nil when extraction was skipped
}
