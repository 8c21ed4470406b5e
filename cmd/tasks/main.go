package main

import (
	"os"
	"strconv"
	"strings"

	"tasks-cli/internal/cli"
)

func isTaskID(s string) bool {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	id, err := strconv.ParseInt(s, 10, 64)
	return err == nil && id > 0
}

// rewriteDirectTaskLookupArgs makes `tasks <task-id>` work like `tasks show <task-id>`.
// Cobra treats the first non-flag token as a subcommand, so argv is rewritten before
// parsing. Persistent flags may come first, so this looks for the first positional token.
func rewriteDirectTaskLookupArgs(argv []string) []string {
	valueFlags := map[string]bool{
		"--dir":    true,
		"--format": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		switch {
		case a == "":
			continue
		case a == "--":
			if i+1 < len(argv) && isTaskID(argv[i+1]) {
				return insertShow(argv, i+1)
			}
			return argv
		case strings.HasPrefix(a, "-"):
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		case isTaskID(a):
			return insertShow(argv, i)
		default:
			return argv
		}
	}
	return argv
}

func insertShow(argv []string, at int) []string {
	out := make([]string, 0, len(argv)+1)
	out = append(out, argv[:at]...)
	out = append(out, "show")
	return append(out, argv[at:]...)
}

func main() {
	os.Args = rewriteDirectTaskLookupArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
