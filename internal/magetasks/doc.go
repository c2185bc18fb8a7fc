// Package magetasks holds the build, test and lint tasks run by the Magefile.
package magetasks
