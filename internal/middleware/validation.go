package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Field length limits. Channel references are URLs or handles; task IDs
// are UUIDs.
const (
	MaxChannelRefLen = 200
	TaskIDLen        = 36
)

var (
	// taskIDRe matches UUID v4 task identifiers.
	taskIDRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	// channelRefRe rejects control characters and whitespace inside the
	// reference; detailed form parsing happens in the source package.
	channelRefRe = regexp.MustCompile(`^[\x21-\x7e]+$`)
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateChannelRef checks that a channel reference is well-formed enough
// to attempt parsing: non-empty, bounded, printable.
func ValidateChannelRef(ref string) (string, string) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", "channelUrl is required"
	}
	if len(ref) > MaxChannelRefLen {
		return "", "channelUrl must be at most 200 characters"
	}
	if !channelRefRe.MatchString(ref) {
		return "", "channelUrl contains invalid characters"
	}
	return ref, ""
}

// ValidateTaskID checks that a task ID is a well-formed UUID.
func ValidateTaskID(id string) (string, string) {
	id = strings.TrimSpace(strings.ToLower(id))
	if id == "" {
		return "", "taskId is required"
	}
	if len(id) != TaskIDLen || !taskIDRe.MatchString(id) {
		return "", "taskId must be a valid UUID"
	}
	return id, ""
}
