package model

// DownloadResult represents a completed download
type DownloadResult struct {
	Strategy string // Name of the strategy that produced the file
	Size     int64  // Bytes written to the destination
}
