// Package markdown loads and renders the lesson documents shipped under
// docs/. It keeps parsing (frontmatter extraction) separate from rendering
// (goldmark) so the preview CLI and tests can exercise either half on its own.
package markdown
