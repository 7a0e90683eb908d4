package domain

// Library version components.
const (
	VersionMajor    = 2
	VersionMinor    = 15
	VersionRevision = 0
)

// Version returns the library version encoded as major*10000 + minor*100 + revision.
func Version() int {
	return VersionMajor*10000 + VersionMinor*100 + VersionRevision
}
