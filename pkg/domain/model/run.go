package model

import "time"

// RunState is the phase an update run is in
type RunState string

const (
	RunStateInit             RunState = "init"
	RunStateConfigLoaded     RunState = "config_loaded"
	RunStateDownloading      RunState = "downloading"
	RunStateDirectorySyncing RunState = "directory_syncing"
	RunStateDone             RunState = "done"
)

// ArtifactOutcome is the download result of one artifact
type ArtifactOutcome struct {
	Key      string
	FileName string
	URL      string
	Strategy string // Empty unless the download succeeded
	Bytes    int64
	Err      error
}

// RunResult summarizes one invocation of the updater
type RunResult struct {
	RunID     string
	State     RunState
	Success   bool
	Artifacts []ArtifactOutcome
	Targets   []string // Directories that were synced
	StartedAt time.Time
	Duration  time.Duration
}

// Failed returns keys of artifacts that could not be downloaded
func (r *RunResult) Failed() []string {
	var keys []string
	for _, a := range r.Artifacts {
		if a.Err != nil {
			keys = append(keys, a.Key)
		}
	}
	return keys
}

// Downloaded returns outcomes of artifacts that were fetched
func (r *RunResult) Downloaded() []ArtifactOutcome {
	var outcomes []ArtifactOutcome
	for _, a := range r.Artifacts {
		if a.Err == nil {
			outcomes = append(outcomes, a)
		}
	}
	return outcomes
}
