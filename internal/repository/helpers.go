package repository

import "strings"

func joinSet(set []string) string {
	return strings.Join(set, ", ")
}
