// Package ini parses the flat INI-like documents that hold per-firmware
// manufacturing secrets and resolves section/field lookups against them.
//
// Only the subset needed by the key store is supported: `[section]` headers,
// `key=value` fields and `;` comments. Nested sections, multi-line values and
// escaping are not recognised; unknown lines are ignored rather than rejected,
// so [Parse] never fails.
//
// Lines are classified with a fixed precedence, first match wins:
//  1. comment  - first non-blank character is `;`
//  2. field    - `key = value` with a non-empty key that contains no `=`
//  3. section  - `[ name ]`
//  4. blank    - an empty line (no whitespace) clears the active section
//
// A field read while no section is active is stored as a top-level (global)
// field. A blank line ends the active section, so fields following it land in
// the globals until the next header.
package ini
