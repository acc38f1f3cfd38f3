// This file's content is intended to be used with go's -ldflags option to inject version control information.
// DO NOT EDIT THE VARIABLE NAMES UNLESS YOU KNOW WHAT YOU ARE DOING.

package bininfo

import "time"

var (
	// Version is the SemVer version of the binary.
	// Git commit is appended, if available, separated by a plus sign [+].
	Version = "v0.0.0"

	// BuildTime is the time at which the application was built, in RFC3339.
	BuildTime = "1970-01-01T00:00:00Z"
)

// BuiltAt parses BuildTime. Page data is compiled into the binary, so this is also
// the last modification time of every dataset served.
func BuiltAt() time.Time {
	t, err := time.Parse(time.RFC3339, BuildTime)
	if err != nil {
		return time.Unix(0, 0).UTC()
	}
	return t
}
