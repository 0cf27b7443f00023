package shared

import (
	"fmt"
	"regexp"

	"smolclaw/pkg/config"
)

var assignmentRe = regexp.MustCompile(`^\s*([A-Za-z_-]+)\s*=(.*)$`)

// ParseAssignment parses "key=value". The key is resolved with
// config.ParseKey; the value is returned as-is, may be empty, and may
// itself contain '='.
func ParseAssignment(s string) (key config.Key, value string, err error) {
	matches := assignmentRe.FindStringSubmatch(s)
	if len(matches) != 3 {
		err = parsingError(s)
		return
	}

	key, err = config.ParseKey(matches[1])
	if err != nil {
		return
	}

	value = matches[2]
	return
}

func parsingError(s string) error {
	return fmt.Errorf("parsing %s: format should be 'key=value'", s)
}
