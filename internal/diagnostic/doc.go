// Package diagnostic collects the findings of the check and overrides
// commands: malformed fixture tags, attributes that have no effect on a
// field, and override entries naming unknown types or fields.
package diagnostic
