package utils

var lastWrittenCount = make(map[string]int)

// SetWrittenCount stores how many lines a handler wrote to its output
func SetWrittenCount(handlerName string, count int) {
	lastWrittenCount[handlerName] = count
}

// GetWrittenCount retrieves the stored count
func GetWrittenCount(handlerName string) int {
	if val, ok := lastWrittenCount[handlerName]; ok {
		return val
	}
	return 0
}
