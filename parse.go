package todotable

import "strings"

// splitTasks breaks a bulk import into tasks: comma-separated, trimmed, empty ones dropped.
func splitTasks(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	var tasks []string
	for _, segment := range strings.Split(text, ",") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		// Only the text before a remaining comma counts. After the split above there can't be one.
		if i := strings.IndexByte(segment, ','); i >= 0 {
			segment = strings.TrimSpace(segment[:i])
		}
		if segment != "" {
			tasks = append(tasks, segment)
		}
	}
	return tasks
}
