package models

// BuildInfo describes the running binary. Date and Commit are stamped at
// link time and read "N/A" for local builds.
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
