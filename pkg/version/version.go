package version

import "fmt"

// RevsynthVersion indicates what version of revsynth the binary belongs to
var RevsynthVersion string

// GitCommit indicates which git commit the binary was built from
var GitCommit string

// String returns a pretty string concatenation of RevsynthVersion and GitCommit
func String() string {
	return fmt.Sprintf("revsynth Version: %s\n Git commit: %s\n", RevsynthVersion, GitCommit)
}
