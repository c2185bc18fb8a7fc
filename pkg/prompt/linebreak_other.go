//go:build !windows

package prompt

// LineBreak separates prompt lines, both as a token and in rendered output.
const LineBreak = "\n"
