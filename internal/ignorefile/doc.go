// Package ignorefile amends .gitignore-style content. Amendments are
// append-only: the original content is always a prefix of the result.
package ignorefile
