package domain

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// UUID versiones 1-5, variante RFC 4122 (8, 9, a, b).
	uuidRegex = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	// local@dominio.tld; no es un validador RFC 5322.
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// IsValidUUID indica si s tiene la forma textual 8-4-4-4-12 con versión 1-5 y variante 8/9/a/b.
func IsValidUUID(s string) bool {
	return uuidRegex.MatchString(s)
}

// IsValidEmail indica si s tiene la forma local@dominio.tld con TLD de al menos dos letras.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

var allowedImageExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

// IsAllowedImage indica si el nombre de archivo tiene extensión jpg, jpeg o png.
func IsAllowedImage(filename string) bool {
	return allowedImageExt[strings.ToLower(filepath.Ext(filename))]
}
