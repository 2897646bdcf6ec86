package version

import (
	"fmt"
	"strings"
)

// validCharacters is a list of characters valid in the appBuild string
const validCharacters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

const (
	appMajor uint = 0
	appMinor uint = 9
	appPatch uint = 3
)

// appBuild is defined as a variable so it can be overridden during the build
// process with '-ldflags "-X github.com/dfscoin/dfsd/version.appBuild=foo"' if needed.
// It MUST only contain characters from validCharacters.
var appBuild string

// Version returns the application version as a properly formed string
func Version() string {
	return formatVersion(appBuild)
}

func formatVersion(build string) string {
	version := fmt.Sprintf("%d.%d.%d", appMajor, appMinor, appPatch)

	// The build metadata is dropped if it contains invalid characters.
	if build != "" && isValidBuild(build) {
		version = fmt.Sprintf("%s-%s", version, build)
	}
	return version
}

func isValidBuild(build string) bool {
	for _, r := range build {
		if !strings.ContainsRune(validCharacters, r) {
			return false
		}
	}
	return true
}
